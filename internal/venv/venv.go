// Package venv provisions the isolated runtime environment for a generated
// project and exposes the activation context later stages run under.
package venv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/flaskforge/cli/internal/execx"
)

// DefaultPythonBin is the interpreter used to create the environment.
const DefaultPythonBin = "python3"

// EnvContext is the activation context for a provisioned environment. It
// replaces the shell "source .../activate && ..." prefix with an explicit
// environment: VIRTUAL_ENV plus the environment's script directory prepended
// to PATH. The zero value means no environment exists; commands run with it
// see the parent environment unchanged and fail on their own if they need
// the environment.
type EnvContext struct {
	// Dir is the environment root directory. Empty until Create succeeds.
	Dir string
}

// Active reports whether an environment was provisioned.
func (e EnvContext) Active() bool {
	return e.Dir != ""
}

// BinDir returns the environment's script directory: Scripts on Windows,
// bin everywhere else.
func (e EnvContext) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Dir, "Scripts")
	}
	return filepath.Join(e.Dir, "bin")
}

// Environ returns the process environment for a command scoped to this
// environment. With no environment provisioned it returns nil, which lets
// the command inherit the parent environment.
func (e EnvContext) Environ() []string {
	if !e.Active() {
		return nil
	}

	env := make([]string, 0, len(os.Environ())+1)
	pathSet := false
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PATH=") {
			env = append(env, "PATH="+e.BinDir()+string(os.PathListSeparator)+strings.TrimPrefix(kv, "PATH="))
			pathSet = true
			continue
		}
		env = append(env, kv)
	}
	if !pathSet {
		env = append(env, "PATH="+e.BinDir())
	}
	env = append(env, "VIRTUAL_ENV="+e.Dir)
	return env
}

// Provisioner creates virtual environments and installs dependencies into
// them.
type Provisioner struct {
	python string
	runner execx.Runner
	log    *log.Logger
}

// NewProvisioner creates a Provisioner using the given runner and logger.
func NewProvisioner(runner execx.Runner, logger *log.Logger) *Provisioner {
	return &Provisioner{
		python: DefaultPythonBin,
		runner: runner,
		log:    logger,
	}
}

// Create provisions a virtual environment at path and returns its activation
// context. On failure the zero EnvContext is returned; later stages that
// depend on the environment are still attempted and fail individually.
func (p *Provisioner) Create(ctx context.Context, path string) (EnvContext, error) {
	err := p.runner.Run(ctx, execx.Command{
		Argv: []string{p.python, "-m", "venv", path},
	})
	if err != nil {
		return EnvContext{}, fmt.Errorf("creating virtual environment: %w", err)
	}

	p.log.Info("virtual environment created", "path", path)
	return EnvContext{Dir: path}, nil
}

// Install installs the dependency specifiers into the environment with a
// single pip invocation. A no-op if deps is empty.
func (p *Provisioner) Install(ctx context.Context, env EnvContext, deps []string) error {
	if len(deps) == 0 {
		return nil
	}

	argv := append([]string{"pip", "install"}, deps...)
	err := p.runner.Run(ctx, execx.Command{
		Argv: argv,
		Env:  env.Environ(),
	})
	if err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}

	p.log.Info("dependencies installed", "count", len(deps))
	return nil
}
