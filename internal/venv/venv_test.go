package venv

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flaskforge/cli/internal/execx"
	"github.com/flaskforge/cli/internal/output"
)

// fakeRunner records commands and fails those matching failOn.
type fakeRunner struct {
	commands []execx.Command
	failOn   func(execx.Command) bool
}

func (f *fakeRunner) Run(_ context.Context, cmd execx.Command) error {
	f.commands = append(f.commands, cmd)
	if f.failOn != nil && f.failOn(cmd) {
		return &execx.ProcessError{Command: cmd.String(), ExitCode: 1, Err: errors.New("forced failure")}
	}
	return nil
}

func TestEnvContext_Zero(t *testing.T) {
	var env EnvContext

	assert.False(t, env.Active())
	assert.Nil(t, env.Environ())
}

func TestEnvContext_BinDir(t *testing.T) {
	env := EnvContext{Dir: filepath.Join("home", "proj", ".fforge")}

	if runtime.GOOS == "windows" {
		assert.Equal(t, filepath.Join(env.Dir, "Scripts"), env.BinDir())
	} else {
		assert.Equal(t, filepath.Join(env.Dir, "bin"), env.BinDir())
	}
}

func TestEnvContext_Environ(t *testing.T) {
	env := EnvContext{Dir: "/proj/.fforge"}
	environ := env.Environ()

	var path, virtualEnv string
	for _, kv := range environ {
		if strings.HasPrefix(kv, "PATH=") {
			path = kv
		}
		if strings.HasPrefix(kv, "VIRTUAL_ENV=") {
			virtualEnv = kv
		}
	}

	assert.Equal(t, "VIRTUAL_ENV=/proj/.fforge", virtualEnv)
	assert.True(t, strings.HasPrefix(path, "PATH="+env.BinDir()), "PATH should start with the env bin dir: %s", path)
}

func TestProvisioner_Create(t *testing.T) {
	runner := &fakeRunner{}
	prov := NewProvisioner(runner, output.NewLoggerTo(io.Discard, 0))

	env, err := prov.Create(context.Background(), "/proj/.fforge")
	require.NoError(t, err)

	assert.Equal(t, "/proj/.fforge", env.Dir)
	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{DefaultPythonBin, "-m", "venv", "/proj/.fforge"}, runner.commands[0].Argv)
}

func TestProvisioner_CreateFailure(t *testing.T) {
	runner := &fakeRunner{failOn: func(execx.Command) bool { return true }}
	prov := NewProvisioner(runner, output.NewLoggerTo(io.Discard, 0))

	env, err := prov.Create(context.Background(), "/proj/.fforge")
	require.Error(t, err)
	assert.False(t, env.Active())
}

func TestProvisioner_InstallEmpty(t *testing.T) {
	runner := &fakeRunner{}
	prov := NewProvisioner(runner, output.NewLoggerTo(io.Discard, 0))

	err := prov.Install(context.Background(), EnvContext{Dir: "/proj/.fforge"}, nil)
	require.NoError(t, err)
	assert.Empty(t, runner.commands)
}

func TestProvisioner_Install(t *testing.T) {
	runner := &fakeRunner{}
	prov := NewProvisioner(runner, output.NewLoggerTo(io.Discard, 0))

	env := EnvContext{Dir: "/proj/.fforge"}
	err := prov.Install(context.Background(), env, []string{"Flask", "Flask-Migrate"})
	require.NoError(t, err)

	require.Len(t, runner.commands, 1)
	cmd := runner.commands[0]
	assert.Equal(t, []string{"pip", "install", "Flask", "Flask-Migrate"}, cmd.Argv)
	assert.NotEmpty(t, cmd.Env, "pip must run inside the environment")
}
