package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Metadata holds the configuration of a package to be created. It is built
// interactively and validated as a whole; invalid metadata is discarded, not
// partially applied.
type Metadata struct {
	Name        string
	Description string
	Author      string
	License     string
	Git         string // "y" or "n" after validation
	Directory   string // absolute after validation
}

type metadataField struct {
	key   string
	value *string
}

// fields returns the ordered (key, value) walk used for validation. The
// explicit list keeps the "first empty field" report deterministic.
func (m *Metadata) fields() []metadataField {
	return []metadataField{
		{"name", &m.Name},
		{"description", &m.Description},
		{"author", &m.Author},
		{"license", &m.License},
		{"git", &m.Git},
		{"directory", &m.Directory},
	}
}

// CheckConfig validates the metadata, short-circuiting on the first empty
// field in declared order. Name and Git are lowercased in place — the
// lowercased name is what the output directory is built from. Directory is
// normalized to an absolute path and must be an existing directory.
func (m *Metadata) CheckConfig() error {
	for _, f := range m.fields() {
		if *f.value == "" {
			return fmt.Errorf("a value is missing from the data: '%s'", f.key)
		}
	}

	m.Git = strings.ToLower(m.Git)
	m.Name = strings.ToLower(m.Name)
	if m.Git != "y" && m.Git != "n" {
		return errors.New("the value you entered in the 'git' data is invalid")
	}

	abs, err := filepath.Abs(m.Directory)
	if err != nil {
		return fmt.Errorf("resolving the package directory: %w", err)
	}
	m.Directory = abs

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("the directory you provided does not exist (%s)", abs)
	}

	return nil
}

// WantsGit reports whether version-control initialization was requested.
// Only meaningful after CheckConfig has succeeded.
func (m *Metadata) WantsGit() bool {
	return m.Git == "y"
}
