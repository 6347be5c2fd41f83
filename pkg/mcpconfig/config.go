package mcpconfig

import (
	"encoding/json"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-errors/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

const (
	// FileName is the registration document read by MCP clients at the project root.
	FileName = ".mcp.json"
	// ServerName is the fixed registration key for the Figma dev-mode server.
	ServerName = "figma-dev-mode-mcp-server"

	TransportSSE = "sse"
)

// ServerConfig describes a single MCP server registration.
type ServerConfig struct {
	Transport string `json:"transport"`
	URL       string `json:"url"`
}

// Document maps registration names to server configs. It is the full contents
// of the on-disk file: writing a document replaces everything at that path.
type Document struct {
	McpServers map[string]ServerConfig `json:"mcpServers"`
}

// NewDocument returns a document holding the single Figma dev-mode registration.
func NewDocument(serverURL string) Document {
	return Document{McpServers: map[string]ServerConfig{
		ServerName: {Transport: TransportSSE, URL: serverURL},
	}}
}

// Marshal renders the document with sorted registration names, two-space
// indentation, and a trailing newline. Identical documents always serialise
// to identical bytes.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Errorf("failed to marshal mcp config: %w", err)
	}
	return append(data, '\n'), nil
}

// Write serialises doc and atomically replaces the file at path. The document
// is written to a temp file in the destination directory first, then renamed
// over path, so a failed write never leaves a partial file behind.
func Write(fsys afero.Fs, path string, doc Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if fi, err := fsys.Stat(dir); err != nil {
		return errors.Errorf("failed to stat destination: %w", err)
	} else if !fi.IsDir() {
		return errors.New("Destination is not a directory: " + dir)
	}
	f, err := afero.TempFile(fsys, dir, FileName)
	if err != nil {
		return errors.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = fsys.Remove(f.Name())
		return errors.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = fsys.Remove(f.Name())
		return errors.Errorf("failed to close temp file: %w", err)
	}
	if err := fsys.Rename(f.Name(), path); err != nil {
		_ = fsys.Remove(f.Name())
		return errors.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Read loads the document at path, tolerating comments and trailing commas in
// hand-edited files.
func Read(fsys afero.Fs, path string) (Document, error) {
	var doc Document
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return doc, errors.Errorf("failed to read mcp config: %w", err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return doc, errors.Errorf("failed to parse mcp config: %w", err)
	}
	if doc.McpServers == nil {
		doc.McpServers = map[string]ServerConfig{}
	}
	return doc, nil
}

// ProjectPath returns the per-project document location.
func ProjectPath(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// UserPath returns the per-user document location shared by all projects.
func UserPath() string {
	return filepath.Join(xdg.ConfigHome, "atelier", "mcp.json")
}
