package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"
)

// Data holds the variable bindings substituted into template files.
type Data struct {
	// ProjectName replaces the project_name placeholder.
	ProjectName string
}

// context converts the bindings to a pongo2 rendering context.
func (d Data) context() pongo2.Context {
	return pongo2.Context{
		"project_name": d.ProjectName,
	}
}

// Render walks the template set, recreates each file's relative path under
// destRoot, and writes the file content with every placeholder substituted.
// The template syntax is the Django/Jinja dialect, so sets may carry block
// constructs, though the shipped sets only use variable interpolation.
// Destination files are overwritten unconditionally; re-rendering with the
// same bindings is idempotent. Returns the created paths relative to
// destRoot.
func Render(set SetName, destRoot string, data Data) ([]string, error) {
	fsys, rootDir, err := getFS(set)
	if err != nil {
		return nil, err
	}

	ctx := data.context()
	var created []string

	err = fs.WalkDir(fsys, rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}

		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(destRoot, relPath)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0o755)
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		tpl, err := pongo2.FromBytes(content)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		rendered, err := tpl.ExecuteBytes(ctx)
		if err != nil {
			return fmt.Errorf("rendering template %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		if err := os.WriteFile(targetPath, rendered, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", targetPath, err)
		}

		created = append(created, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template set %s: %w", set, err)
	}

	return created, nil
}

// ListFiles returns the file paths a template set would create, relative to
// the destination root.
func ListFiles(set SetName) ([]string, error) {
	fsys, rootDir, err := getFS(set)
	if err != nil {
		return nil, err
	}

	var files []string

	err = fs.WalkDir(fsys, rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}

		files = append(files, relPath)
		return nil
	})

	return files, err
}
