package install

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atelier-dev/cli/internal/notify"
	"github.com/atelier-dev/cli/internal/project"
	"github.com/atelier-dev/cli/internal/settings"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/atelier-dev/cli/pkg/mcpconfig"
	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

// Outcome reports whether the MCP server config was installed. A failed
// install carries its cause in Err and must never abort the caller.
type Outcome struct {
	Installed bool
	Err       error
}

func Run(ctx context.Context, projectPath string, proj project.Config, store *settings.Store, reporter *notify.Reporter, fsys afero.Fs) Outcome {
	conf := store.Resolve()
	if !conf.Enabled {
		utils.Debug("MCP install is disabled by settings.")
		return Outcome{}
	}
	result := Outcome{}
	if err := run(ctx, projectPath, proj, conf, fsys); err != nil {
		result.Err = err
	} else {
		result.Installed = true
	}
	event := notify.Event{
		ProjectID:    proj.Id,
		McpInstalled: result.Installed,
		Message:      fmt.Sprintf("Installed %s.", mcpconfig.ServerName),
	}
	if result.Err != nil {
		event.Message = result.Err.Error()
	}
	reporter.Notify(ctx, event)
	return result
}

func run(ctx context.Context, projectPath string, proj project.Config, conf settings.InstallSettings, fsys afero.Fs) error {
	// Sanity checks.
	if len(proj.Id) == 0 {
		return errors.New("Missing project id.")
	}
	if err := conf.Validate(ctx); err != nil {
		return err
	}
	path := mcpconfig.ProjectPath(projectPath)
	if conf.Scope == settings.ScopeUser {
		path = mcpconfig.UserPath()
		if err := utils.MkdirIfNotExistFS(fsys, filepath.Dir(path)); err != nil {
			return err
		}
	} else if fi, err := fsys.Stat(projectPath); err != nil {
		return errors.Errorf("Cannot find project directory: %w", err)
	} else if !fi.IsDir() {
		return errors.Errorf("Project path is not a directory: %s", projectPath)
	}
	if err := mcpconfig.Write(fsys, path, mcpconfig.NewDocument(conf.ServerURL)); err != nil {
		return err
	}
	utils.Info(1, "Wrote MCP config: %s", path)
	return nil
}

// InstallForProject wires the installer from persisted user settings. Progress
// events are flushed before returning so callers can treat it as a single step.
func InstallForProject(ctx context.Context, projectPath string, proj project.Config, fsys afero.Fs) Outcome {
	store := settings.NewStore(fsys)
	reporter := notify.NewReporter(store.EventsURL())
	defer reporter.Flush()
	return Run(ctx, projectPath, proj, store, reporter, fsys)
}
