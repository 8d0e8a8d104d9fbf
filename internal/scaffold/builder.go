package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// startingVersion is embedded in every generated metadata descriptor.
const startingVersion = "1.0.0"

// GitInitFunc initializes version control in dir.
type GitInitFunc func(dir string) error

// Builder writes the package skeleton for validated metadata.
type Builder struct {
	log     *slog.Logger
	gitInit GitInitFunc
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithGitInit sets a custom version-control initializer (useful for testing).
func WithGitInit(fn GitInitFunc) BuilderOption {
	return func(b *Builder) {
		b.gitInit = fn
	}
}

// NewBuilder creates a Builder logging through log.
func NewBuilder(log *slog.Logger, opts ...BuilderOption) *Builder {
	b := &Builder{
		log:     log,
		gitInit: gitInit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result holds the outcome of a build.
type Result struct {
	PackageRoot string
	Files       []string
}

// templateData holds the variables available to the skeleton templates.
type templateData struct {
	Name        string
	Version     string
	Description string
	Author      string
	License     string
	Repository  string // empty unless git was requested
}

// Build creates <directory>/<name>/src/<name>/out/ and writes the template
// files into it. The metadata must already have passed CheckConfig. There is
// no rollback: a failure partway through leaves what was already written.
func (b *Builder) Build(m *Metadata) (*Result, error) {
	root := filepath.Join(m.Directory, m.Name)
	srcDir := filepath.Join(root, "src", m.Name)
	outDir := filepath.Join(srcDir, "out")

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating package tree: %w", err)
	}

	data := templateData{
		Name:        m.Name,
		Version:     startingVersion,
		Description: m.Description,
		Author:      m.Author,
		License:     m.License,
	}
	if m.WantsGit() {
		data.Repository = fmt.Sprintf("https://github.com/%s/%s", m.Author, m.Name)
	}

	result := &Result{PackageRoot: root}

	outputs := []struct {
		tmpl string
		path string
	}{
		{"metadata.luau.tmpl", filepath.Join(srcDir, "Metadata.luau")},
		{"license.luau.tmpl", filepath.Join(srcDir, "License.luau")},
		{"index.luau.tmpl", filepath.Join(outDir, "index.luau")},
	}
	for _, o := range outputs {
		if err := renderFile(o.tmpl, o.path, data); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, o.path)
	}

	if m.WantsGit() {
		// Best-effort: a missing or failing git must not abort the build.
		if err := b.gitInit(root); err != nil {
			b.log.Debug("git init failed", "path", root, "error", err)
		}

		readme := filepath.Join(root, "README.md")
		if err := os.WriteFile(readme, []byte("# "+m.Name), 0644); err != nil {
			return nil, fmt.Errorf("writing README.md: %w", err)
		}
		result.Files = append(result.Files, readme)
	}

	return result, nil
}

func renderFile(tmplName, path string, data templateData) error {
	raw, err := templatesFS.ReadFile("templates/" + tmplName)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", tmplName, err)
	}

	tmpl, err := template.New(tmplName).Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplName, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
