package settings

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, fsys afero.Fs, contents string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, Path(), []byte(contents), 0644))
}

func TestResolveSettings(t *testing.T) {
	t.Run("defaults on missing file", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		// Run test
		conf := NewStore(fsys).Resolve()
		// Check defaults
		assert.True(t, conf.Enabled)
		assert.Equal(t, DefaultServerURL, conf.ServerURL)
		assert.Equal(t, ScopeProject, conf.Scope)
	})

	t.Run("reads persisted settings", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		writeSettings(t, fsys, `{
			"enableFigmaMCP": false,
			"figmaMCPUrl": "http://localhost:9000/sse",
			"mcpInstallScope": "user"
		}`)
		// Run test
		conf := NewStore(fsys).Resolve()
		// Check values
		assert.False(t, conf.Enabled)
		assert.Equal(t, "http://localhost:9000/sse", conf.ServerURL)
		assert.Equal(t, ScopeUser, conf.Scope)
	})

	t.Run("defaults on malformed values", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		writeSettings(t, fsys, `{
			"enableFigmaMCP": "banana",
			"figmaMCPUrl": {"nested": true},
			"mcpInstallScope": "global"
		}`)
		// Run test
		conf := NewStore(fsys).Resolve()
		// Check defaults
		assert.True(t, conf.Enabled)
		assert.Equal(t, DefaultServerURL, conf.ServerURL)
		assert.Equal(t, ScopeProject, conf.Scope)
	})

	t.Run("defaults on unreadable file", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		writeSettings(t, fsys, "not json")
		// Run test
		conf := NewStore(fsys).Resolve()
		// Check defaults
		assert.True(t, conf.Enabled)
		assert.Equal(t, DefaultServerURL, conf.ServerURL)
	})

	t.Run("rereads settings on every resolve", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		store := NewStore(fsys)
		require.True(t, store.Resolve().Enabled)
		// Run test
		writeSettings(t, fsys, `{"enableFigmaMCP": false}`)
		conf := store.Resolve()
		// Check values
		assert.False(t, conf.Enabled)
	})

	t.Run("reverts to defaults when file is removed", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		writeSettings(t, fsys, `{"enableFigmaMCP": false, "mcpInstallScope": "user"}`)
		store := NewStore(fsys)
		require.False(t, store.Resolve().Enabled)
		// Run test
		require.NoError(t, fsys.Remove(Path()))
		conf := store.Resolve()
		// Check defaults
		assert.True(t, conf.Enabled)
		assert.Equal(t, DefaultServerURL, conf.ServerURL)
		assert.Equal(t, ScopeProject, conf.Scope)
	})

	t.Run("env overrides persisted settings", func(t *testing.T) {
		t.Setenv("ATELIER_FIGMA_MCP_URL", "http://10.0.0.5:3845/sse")
		t.Setenv("ATELIER_ENABLE_FIGMA_MCP", "false")
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		writeSettings(t, fsys, `{"figmaMCPUrl": "http://localhost:9000/sse"}`)
		// Run test
		conf := NewStore(fsys).Resolve()
		// Check values
		assert.False(t, conf.Enabled)
		assert.Equal(t, "http://10.0.0.5:3845/sse", conf.ServerURL)
	})
}

func TestValidateSettings(t *testing.T) {
	t.Run("accepts http and https urls", func(t *testing.T) {
		for _, url := range []string{"http://127.0.0.1:3845/sse", "https://mcp.example.com/sse"} {
			conf := InstallSettings{Enabled: true, ServerURL: url, Scope: ScopeProject}
			assert.NoError(t, conf.Validate(context.Background()))
		}
	})

	t.Run("rejects malformed url", func(t *testing.T) {
		conf := InstallSettings{Enabled: true, ServerURL: "not-a-url", Scope: ScopeProject}
		// Run test
		err := conf.Validate(context.Background())
		// Check error
		assert.ErrorContains(t, err, "Invalid MCP server URL")
		assert.ErrorContains(t, err, "not-a-url")
	})

	t.Run("rejects empty url", func(t *testing.T) {
		conf := InstallSettings{Enabled: true, Scope: ScopeProject}
		// Run test
		err := conf.Validate(context.Background())
		// Check error
		assert.ErrorContains(t, err, "Invalid MCP server URL")
	})
}

func TestParseScope(t *testing.T) {
	t.Run("parses known scopes", func(t *testing.T) {
		scope, err := ParseScope("project")
		assert.NoError(t, err)
		assert.Equal(t, ScopeProject, scope)
		scope, err = ParseScope("USER")
		assert.NoError(t, err)
		assert.Equal(t, ScopeUser, scope)
	})

	t.Run("throws error on unknown scope", func(t *testing.T) {
		_, err := ParseScope("global")
		assert.ErrorContains(t, err, "unknown install scope")
	})
}

func TestEventsURL(t *testing.T) {
	t.Run("defaults to disabled", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		// Run test
		assert.Empty(t, NewStore(fsys).EventsURL())
	})

	t.Run("reads persisted endpoint", func(t *testing.T) {
		// Setup in-memory fs
		fsys := afero.NewMemMapFs()
		writeSettings(t, fsys, `{"uiEventsUrl": "http://127.0.0.1:39710/events"}`)
		// Run test
		assert.Equal(t, "http://127.0.0.1:39710/events", NewStore(fsys).EventsURL())
	})
}
