package remove

import (
	"context"
	"fmt"
	"os"

	"github.com/atelier-dev/cli/internal/settings"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/atelier-dev/cli/pkg/mcpconfig"
	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

func Run(ctx context.Context, scope settings.Scope, projectPath string, autoConfirm bool, fsys afero.Fs) error {
	path := mcpconfig.ProjectPath(projectPath)
	if scope == settings.ScopeUser {
		path = mcpconfig.UserPath()
	}
	doc, err := mcpconfig.Read(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Errorf("No MCP config found at %s", utils.Bold(path))
		}
		return err
	}
	if _, ok := doc.McpServers[mcpconfig.ServerName]; !ok {
		return errors.Errorf("%s is not registered in %s", utils.Aqua(mcpconfig.ServerName), utils.Bold(path))
	}
	if !autoConfirm {
		msg := fmt.Sprintf("Do you want to remove %s from %s?", utils.Aqua(mcpconfig.ServerName), utils.Bold(path))
		if shouldRemove, err := utils.NewConsole().PromptYesNo(ctx, msg, true); err != nil {
			return err
		} else if !shouldRemove {
			return errors.New("Aborted " + utils.Aqua("atelier mcp remove") + ".")
		}
	}
	delete(doc.McpServers, mcpconfig.ServerName)
	if len(doc.McpServers) == 0 {
		if err := fsys.Remove(path); err != nil {
			return errors.Errorf("failed to remove mcp config: %w", err)
		}
	} else if err := mcpconfig.Write(fsys, path, doc); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Removed MCP server", utils.Aqua(mcpconfig.ServerName), "from", utils.Bold(path))
	return nil
}
