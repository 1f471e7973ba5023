// Package scaffold creates the fixed directory skeleton for a generated
// project.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flaskforge/cli/internal/config"
)

// CreateDirectories creates the project root, package root, and the
// package's templates/ and static/ subdirectories. Pre-existing directories
// are not an error; the operation can be repeated safely.
func CreateDirectories(paths config.ProjectPaths) error {
	dirs := []string{
		paths.Root,
		paths.Package,
		filepath.Join(paths.Package, "templates"),
		filepath.Join(paths.Package, "static"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	return nil
}
