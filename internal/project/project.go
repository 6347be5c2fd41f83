package project

import (
	"bytes"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

// Config is the project manifest persisted as atelier.toml. The id is assigned
// on creation and treated as opaque everywhere else.
type Config struct {
	Id   string `toml:"id"`
	Name string `toml:"name"`
}

func Load(projectDir string, fsys afero.Fs) (Config, error) {
	var config Config
	path := filepath.Join(projectDir, utils.ManifestPath)
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return config, errors.Errorf("failed to read project manifest: %w", err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, errors.Errorf("failed to parse project manifest: %w", err)
	}
	return config, nil
}

func (c Config) Save(projectDir string, fsys afero.Fs) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return errors.Errorf("failed to marshal project manifest: %w", err)
	}
	return utils.WriteFile(filepath.Join(projectDir, utils.ManifestPath), buf.Bytes(), fsys)
}
