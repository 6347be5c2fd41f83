package settings

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/go-errors/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Scope selects where an MCP registration is installed.
type Scope string

const (
	// ScopeProject writes the registration into the project directory.
	ScopeProject Scope = "project"
	// ScopeUser writes the registration into the per-user config directory.
	ScopeUser Scope = "user"
)

func ParseScope(value string) (Scope, error) {
	switch scope := Scope(strings.ToLower(value)); scope {
	case ScopeProject, ScopeUser:
		return scope, nil
	}
	return "", errors.Errorf("unknown install scope: %s", value)
}

// Settings keys persisted by the desktop app.
const (
	keyEnableFigmaMCP  = "enableFigmaMCP"
	keyFigmaMCPUrl     = "figmaMCPUrl"
	keyMcpInstallScope = "mcpInstallScope"
	keyUiEventsUrl     = "uiEventsUrl"
)

// Defaults applied when a setting is missing or malformed.
const (
	DefaultEnabled   = true
	DefaultServerURL = "http://127.0.0.1:3845/sse"
	DefaultScope     = ScopeProject
)

// InstallSettings is the resolved MCP install behaviour for a single call.
type InstallSettings struct {
	Enabled   bool
	ServerURL string `validate:"required,http_url"`
	Scope     Scope
}

// Validate rejects malformed server URLs before any file is written.
func (s InstallSettings) Validate(ctx context.Context) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(ctx, &s); err != nil {
		return errors.Errorf("Invalid MCP server URL %q: %w", s.ServerURL, err)
	}
	return nil
}

// Path is the settings file written by the desktop app.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "atelier", "settings.json")
}

// Store reads the desktop app's persisted settings. It never writes them.
type Store struct {
	fsys afero.Fs
}

// NewStore binds the settings file and env overrides against fsys.
func NewStore(fsys afero.Fs) *Store {
	return &Store{fsys: fsys}
}

// load parses the settings file from scratch so edits and deletions between
// calls are always observed.
func (s *Store) load() *viper.Viper {
	// Instantiate to avoid leaking settings into global viper state
	v := viper.New()
	v.SetFs(s.fsys)
	v.SetConfigFile(Path())
	v.SetConfigType("json")
	// Settings keys are camelCase, so bind env names explicitly
	_ = v.BindEnv(keyEnableFigmaMCP, "ATELIER_ENABLE_FIGMA_MCP")
	_ = v.BindEnv(keyFigmaMCPUrl, "ATELIER_FIGMA_MCP_URL")
	_ = v.BindEnv(keyMcpInstallScope, "ATELIER_MCP_INSTALL_SCOPE")
	_ = v.BindEnv(keyUiEventsUrl, "ATELIER_UI_EVENTS_URL")
	if err := v.ReadInConfig(); err != nil {
		utils.Debug("Failed to read settings: %v", err)
	}
	return v
}

// Resolve re-reads the settings file and returns the install settings for the
// next call. It never fails: unreadable files or malformed values degrade to
// the documented defaults with a debug log.
func (s *Store) Resolve() InstallSettings {
	v := s.load()
	result := InstallSettings{
		Enabled:   DefaultEnabled,
		ServerURL: DefaultServerURL,
		Scope:     DefaultScope,
	}
	if v.IsSet(keyEnableFigmaMCP) {
		if enabled, err := cast.ToBoolE(v.Get(keyEnableFigmaMCP)); err != nil {
			utils.Debug("Malformed setting %s: %v", keyEnableFigmaMCP, err)
		} else {
			result.Enabled = enabled
		}
	}
	if v.IsSet(keyFigmaMCPUrl) {
		if serverUrl, err := cast.ToStringE(v.Get(keyFigmaMCPUrl)); err != nil {
			utils.Debug("Malformed setting %s: %v", keyFigmaMCPUrl, err)
		} else {
			result.ServerURL = serverUrl
		}
	}
	if v.IsSet(keyMcpInstallScope) {
		if value, err := cast.ToStringE(v.Get(keyMcpInstallScope)); err != nil {
			utils.Debug("Malformed setting %s: %v", keyMcpInstallScope, err)
		} else if scope, err := ParseScope(value); err != nil {
			utils.Debug("Malformed setting %s: %v", keyMcpInstallScope, err)
		} else {
			result.Scope = scope
		}
	}
	return result
}

// EventsURL returns the desktop app's progress event endpoint, or empty when
// event reporting is disabled.
func (s *Store) EventsURL() string {
	return s.load().GetString(keyUiEventsUrl)
}
