package create

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atelier-dev/cli/internal/mcp/install"
	"github.com/atelier-dev/cli/internal/notify"
	"github.com/atelier-dev/cli/internal/project"
	"github.com/atelier-dev/cli/internal/settings"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/atelier-dev/cli/pkg/mcpconfig"
	"github.com/go-errors/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

func Run(ctx context.Context, name string, store *settings.Store, reporter *notify.Reporter, fsys afero.Fs) error {
	projectDir := filepath.Clean(name)
	manifest := filepath.Join(projectDir, utils.ManifestPath)
	// Sanity checks.
	if _, err := fsys.Stat(manifest); err == nil {
		return errors.Errorf("Project already initialized. Remove %s to reinitialize.", utils.Bold(manifest))
	}
	proj := project.Config{Id: uuid.New().String(), Name: name}
	if err := proj.Save(projectDir, fsys); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Created project at", utils.Bold(projectDir))
	if err := writeDotEnv(projectDir, proj, fsys); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create .env file:", err)
	}
	// A failed install must not fail project creation.
	if result := install.Run(ctx, projectDir, proj, store, reporter, fsys); result.Err != nil {
		utils.Warning("Failed to install MCP server: %v", result.Err)
		fmt.Fprintln(os.Stderr, "Run", utils.Aqua("atelier mcp install"), "to retry after fixing your settings.")
	} else if result.Installed {
		fmt.Fprintln(os.Stderr, "Installed MCP server", utils.Aqua(mcpconfig.ServerName)+".")
	}
	return nil
}

func writeDotEnv(projectDir string, proj project.Config, fsys afero.Fs) error {
	contents, err := godotenv.Marshal(map[string]string{
		"ATELIER_PROJECT_ID":   proj.Id,
		"ATELIER_PROJECT_NAME": proj.Name,
	})
	if err != nil {
		return errors.Errorf("failed to marshal env file: %w", err)
	}
	return utils.WriteFile(filepath.Join(projectDir, ".env"), []byte(contents+"\n"), fsys)
}
