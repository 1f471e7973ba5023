// Package blueprint generates named sub-units of a project: a directory
// skeleton plus a routing stub, package initializer, form stub, and child
// template, all derived from the sub-unit's name.
package blueprint

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/flosch/pongo2/v6"

	"github.com/flaskforge/cli/internal/config"
)

//go:embed stubs
var stubsFS embed.FS

// The four files emitted per blueprint, as stub template → target file name.
var stubFiles = []struct {
	stub   string
	target string
}{
	{"routes.py", "routes.py"},
	{"init.py", "__init__.py"},
	{"forms.py", "forms.py"},
	{"home.html", ""}, // target depends on the blueprint name
}

// Generator emits blueprint sub-trees under the package root.
type Generator struct {
	log *log.Logger
}

// NewGenerator creates a Generator with the given logger.
func NewGenerator(logger *log.Logger) *Generator {
	return &Generator{log: logger}
}

// Generate creates one blueprint sub-tree: the blueprint directory with its
// templates/ and static/ children, then the four stub files. The file writes
// are independent; a failed write is logged and does not roll back the
// others. Returns the created file paths relative to the project root.
//
// The name must pass ValidateName before any interpolation happens; an
// invalid name writes nothing.
func (g *Generator) Generate(name string, paths config.ProjectPaths) ([]string, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	bpDir := filepath.Join(paths.Package, name)
	for _, dir := range []string{bpDir, filepath.Join(bpDir, "templates"), filepath.Join(bpDir, "static")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating blueprint directory %s: %w", dir, err)
		}
	}

	ctx := pongo2.Context{
		"name":  name,
		"title": capitalize(name),
	}

	var created []string
	var errs []error
	for _, f := range stubFiles {
		target := f.target
		if target == "" {
			target = filepath.Join("templates", name+"_home.html")
		}
		targetPath := filepath.Join(bpDir, target)

		if err := g.renderStub(f.stub, targetPath, ctx); err != nil {
			g.log.Error("writing blueprint file", "blueprint", name, "file", target, "error", err)
			errs = append(errs, err)
			continue
		}

		rel, err := filepath.Rel(paths.Root, targetPath)
		if err != nil {
			rel = targetPath
		}
		created = append(created, rel)
	}

	return created, errors.Join(errs...)
}

// renderStub renders one embedded stub template to targetPath.
func (g *Generator) renderStub(stub, targetPath string, ctx pongo2.Context) error {
	content, err := stubsFS.ReadFile("stubs/" + stub)
	if err != nil {
		return fmt.Errorf("reading stub %s: %w", stub, err)
	}

	tpl, err := pongo2.FromBytes(content)
	if err != nil {
		return fmt.Errorf("parsing stub %s: %w", stub, err)
	}

	rendered, err := tpl.ExecuteBytes(ctx)
	if err != nil {
		return fmt.Errorf("rendering stub %s: %w", stub, err)
	}

	if err := os.WriteFile(targetPath, rendered, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", targetPath, err)
	}

	return nil
}
