package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

const (
	// ManifestPath is the project manifest written by `atelier create`.
	ManifestPath = "atelier.toml"

	SuggestDebugFlag = "Try rerunning the command with --debug to troubleshoot the error."
)

var (
	// Assigned using `-ldflags`: https://stackoverflow.com/q/11354518
	Version   string
	SentryDsn string

	CmdSuggestion string
)

// GetProjectRoot walks up from the working directory until a project manifest
// is found, defaulting to the working directory itself.
func GetProjectRoot(fsys afero.Fs) (string, error) {
	origWd, err := os.Getwd()
	if err != nil {
		return "", errors.Errorf("failed to get working directory: %w", err)
	}
	return getProjectRoot(origWd, fsys), nil
}

func getProjectRoot(absPath string, fsys afero.Fs) string {
	for cwd := absPath; ; cwd = filepath.Dir(cwd) {
		path := filepath.Join(cwd, ManifestPath)
		// Treat all errors as file not exists
		if exists, err := afero.Exists(fsys, path); exists {
			return cwd
		} else if err != nil {
			fmt.Fprintln(GetDebugLogger(), err)
		}
		if isRootDirectory(cwd) {
			break
		}
	}
	return absPath
}

func MkdirIfNotExistFS(fsys afero.Fs, path string) error {
	if err := fsys.MkdirAll(path, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return errors.Errorf("failed to mkdir: %w", err)
	}
	return nil
}

func WriteFile(path string, contents []byte, fsys afero.Fs) error {
	if err := MkdirIfNotExistFS(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, contents, 0644); err != nil {
		return errors.Errorf("failed to write file: %w", err)
	}
	return nil
}

func Ptr[T any](v T) *T {
	return &v
}
