package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectPaths holds the derived filesystem layout for one generation run.
// Immutable once computed.
type ProjectPaths struct {
	// Root is the project root: <cwd>/<project-name>.
	Root string

	// Package is the package root: <root>/<project-name>.
	Package string

	// Env is the environment directory. Always <root>/.fforge; the
	// --venv-dir flag is accepted but does not change this.
	Env string
}

// NewProjectPaths derives the project layout from the working directory and
// project name.
func NewProjectPaths(cwd, projectName string) ProjectPaths {
	root := filepath.Join(cwd, projectName)
	return ProjectPaths{
		Root:    root,
		Package: filepath.Join(root, projectName),
		Env:     filepath.Join(root, EnvDirName),
	}
}

// ExpandPath expands a leading ~ to the user home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
