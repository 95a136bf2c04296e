package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultPath is the conventional manifest location in a project root.
const DefaultPath = "pyproject.toml"

// Defaults used when synthesizing a manifest for a project that has none.
const (
	DefaultProjectName    = "my-project"
	DefaultProjectVersion = "0.1.0"
)

// Document is the manifest as persisted on disk. Only the project table is
// modeled; the installer tool owns everything else in the file.
type Document struct {
	Project Project `toml:"project"`
}

// Project is the [project] table: identity plus the dependency list that
// bootstrap clears and the installer tool repopulates out-of-band.
type Project struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Dependencies []string `toml:"dependencies"`
}

// Load reads a manifest from the given path. If the file does not exist, it
// returns a synthesized minimal manifest and no error, allowing bootstrap to
// proceed in a fresh project directory.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

// Default returns the minimal manifest synthesized when none exists on disk.
func Default() *Document {
	return &Document{
		Project: Project{
			Name:         DefaultProjectName,
			Version:      DefaultProjectVersion,
			Dependencies: []string{},
		},
	}
}

// Save writes the manifest to the given path, creating parent directories as
// needed.
func Save(path string, doc *Document) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Normalize loads the manifest at path (synthesizing a default when absent),
// clears its dependency list, and persists the result. The installer tool is
// expected to append dependencies back as each requirement is added.
func Normalize(path string) (*Document, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	doc.Project.Dependencies = []string{}

	if err := Save(path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
