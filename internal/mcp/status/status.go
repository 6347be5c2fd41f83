package status

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/atelier-dev/cli/internal/settings"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/atelier-dev/cli/pkg/mcpconfig"
	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

type McpStatus struct {
	Enabled    bool   `json:"enabled" toml:"enabled" yaml:"enabled"`
	ServerURL  string `json:"serverUrl" toml:"server_url" yaml:"server_url"`
	Scope      string `json:"scope" toml:"scope" yaml:"scope"`
	ConfigPath string `json:"configPath" toml:"config_path" yaml:"config_path"`
	Installed  bool   `json:"installed" toml:"installed" yaml:"installed"`
}

func (s McpStatus) toValues() map[string]string {
	return map[string]string{
		"ATELIER_MCP_ENABLED":     strconv.FormatBool(s.Enabled),
		"ATELIER_MCP_SERVER_URL":  s.ServerURL,
		"ATELIER_MCP_SCOPE":       s.Scope,
		"ATELIER_MCP_CONFIG_PATH": s.ConfigPath,
		"ATELIER_MCP_INSTALLED":   strconv.FormatBool(s.Installed),
	}
}

func Run(ctx context.Context, projectPath, format string, fsys afero.Fs) error {
	result, err := check(projectPath, fsys)
	if err != nil {
		return err
	}
	return printStatus(result, format, os.Stdout)
}

func check(projectPath string, fsys afero.Fs) (McpStatus, error) {
	conf := settings.NewStore(fsys).Resolve()
	path := mcpconfig.ProjectPath(projectPath)
	if conf.Scope == settings.ScopeUser {
		path = mcpconfig.UserPath()
	}
	result := McpStatus{
		Enabled:    conf.Enabled,
		ServerURL:  conf.ServerURL,
		Scope:      string(conf.Scope),
		ConfigPath: path,
	}
	if doc, err := mcpconfig.Read(fsys, path); err == nil {
		_, result.Installed = doc.McpServers[mcpconfig.ServerName]
	} else if !errors.Is(err, os.ErrNotExist) {
		return result, err
	}
	return result, nil
}

func printStatus(result McpStatus, format string, w io.Writer) error {
	switch format {
	case utils.OutputPretty:
		state := utils.Yellow("disabled")
		if result.Enabled {
			state = utils.Aqua("enabled")
		}
		installed := "no"
		if result.Installed {
			installed = "yes"
		}
		fmt.Fprintf(w, "%14s: %s\n", "Figma MCP", state)
		fmt.Fprintf(w, "%14s: %s\n", "Server URL", result.ServerURL)
		fmt.Fprintf(w, "%14s: %s\n", "Install scope", result.Scope)
		fmt.Fprintf(w, "%14s: %s\n", "Config path", result.ConfigPath)
		fmt.Fprintf(w, "%14s: %s\n", "Installed", installed)
		return nil
	case utils.OutputEnv:
		return utils.EncodeOutput(format, w, result.toValues())
	}
	return utils.EncodeOutput(format, w, result)
}
