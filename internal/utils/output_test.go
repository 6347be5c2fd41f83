package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOutput(t *testing.T) {
	t.Run("encodes env format", func(t *testing.T) {
		input := map[string]string{
			"ATELIER_SERVER_URL": "http://127.0.0.1:3845/sse",
			"ATELIER_PROJECT_ID": "prj-1234",
		}
		var buf bytes.Buffer
		err := EncodeOutput(OutputEnv, &buf, input)
		assert.NoError(t, err)
		expected := "ATELIER_PROJECT_ID=\"prj-1234\"\nATELIER_SERVER_URL=\"http://127.0.0.1:3845/sse\"\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("fails env format with invalid type", func(t *testing.T) {
		input := map[string]int{"FOO": 123}
		var buf bytes.Buffer
		err := EncodeOutput(OutputEnv, &buf, input)
		assert.ErrorContains(t, err, "value is not a map[string]string")
	})

	t.Run("encodes json format", func(t *testing.T) {
		input := map[string]interface{}{
			"name": "starfield",
			"server": map[string]interface{}{
				"port": 3845,
				"sse":  true,
			},
		}
		var buf bytes.Buffer
		err := EncodeOutput(OutputJson, &buf, input)
		assert.NoError(t, err)
		expected := `{
  "name": "starfield",
  "server": {
    "port": 3845,
    "sse": true
  }
}
`
		assert.Equal(t, expected, buf.String())
	})

	t.Run("encodes yaml format", func(t *testing.T) {
		input := map[string]interface{}{
			"name": "starfield",
			"server": map[string]interface{}{
				"port": 3845,
				"sse":  true,
			},
		}
		var buf bytes.Buffer
		err := EncodeOutput(OutputYaml, &buf, input)
		assert.NoError(t, err)
		expected := `name: starfield
server:
    port: 3845
    sse: true
`
		assert.Equal(t, expected, buf.String())
	})

	t.Run("encodes toml format", func(t *testing.T) {
		input := map[string]interface{}{
			"name": "starfield",
			"server": map[string]interface{}{
				"port": 3845,
				"sse":  true,
			},
		}
		var buf bytes.Buffer
		err := EncodeOutput(OutputToml, &buf, input)
		assert.NoError(t, err)
		expected := `name = "starfield"

[server]
  port = 3845
  sse = true
`
		assert.Equal(t, expected, buf.String())
	})

	t.Run("fails with unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := EncodeOutput("invalid", &buf, nil)
		assert.ErrorContains(t, err, `Unsupported output encoding "invalid"`)
	})

	t.Run("encodes nested registrations", func(t *testing.T) {
		input := map[string]interface{}{
			"mcpServers": map[string]interface{}{
				"figma-dev-mode-mcp-server": map[string]interface{}{
					"transport": "sse",
					"url":       "http://127.0.0.1:3845/sse",
				},
				"notes": map[string]interface{}{
					"transport": "streamable-http",
					"url":       "https://example.com/mcp",
				},
			},
		}
		var buf bytes.Buffer
		err := EncodeOutput(OutputJson, &buf, input)
		require.NoError(t, err)
		expected := `{
  "mcpServers": {
    "figma-dev-mode-mcp-server": {
      "transport": "sse",
      "url": "http://127.0.0.1:3845/sse"
    },
    "notes": {
      "transport": "streamable-http",
      "url": "https://example.com/mcp"
    }
  }
}
`
		assert.Equal(t, expected, buf.String())
	})
}
