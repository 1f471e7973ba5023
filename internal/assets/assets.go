// Package assets holds the fixed file payloads written into every generated
// project: the application initializer, the model definitions, the container
// files, and the CI workflow. The bodies are opaque boilerplate; the
// pipeline only decides where they land.
package assets

import "embed"

//go:embed files
var filesFS embed.FS

func read(name string) ([]byte, error) {
	return filesFS.ReadFile("files/" + name)
}

// AppInit returns the package initializer body, written as __init__.py under
// the package root.
func AppInit() ([]byte, error) {
	return read("init.py")
}

// Models returns the model definition body, written as models.py under the
// package root.
func Models() ([]byte, error) {
	return read("models.py")
}

// Dockerfile returns the container build file body.
func Dockerfile() ([]byte, error) {
	return read("Dockerfile")
}

// Compose returns the container compose file body.
func Compose() ([]byte, error) {
	return read("docker-compose.yml")
}

// CIWorkflow returns the GitHub Actions workflow body, written under
// .github/workflows/python-app.yml.
func CIWorkflow() ([]byte, error) {
	return read("python-app.yml")
}
