package execx

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fferrors "github.com/flaskforge/cli/internal/errors"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
}

func TestShellRunner_Success(t *testing.T) {
	skipWithoutShell(t)

	err := NewShellRunner().Run(context.Background(), Command{Line: "true"})
	assert.NoError(t, err)
}

func TestShellRunner_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	err := NewShellRunner().Run(context.Background(), Command{Line: "false"})
	require.Error(t, err)

	var procErr *ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, 1, procErr.ExitCode)
	assert.Contains(t, procErr.Error(), "exited with status 1")
	assert.True(t, errors.Is(err, fferrors.ErrProcess))
}

func TestShellRunner_Argv(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "created.txt")

	err := NewShellRunner().Run(context.Background(), Command{Argv: []string{"touch", target}})
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestShellRunner_WorkingDirectory(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()

	err := NewShellRunner().Run(context.Background(), Command{Line: "touch created.txt", Dir: dir})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "created.txt"))
}

func TestShellRunner_LaunchFailure(t *testing.T) {
	err := NewShellRunner().Run(context.Background(), Command{Argv: []string{"definitely-not-a-binary-xyz"}})
	require.Error(t, err)

	var procErr *ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, -1, procErr.ExitCode)
}

func TestShellRunner_EmptyCommand(t *testing.T) {
	err := NewShellRunner().Run(context.Background(), Command{})
	assert.Error(t, err)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "pip install 'a b'", Command{Argv: []string{"pip", "install", "a b"}}.String())
	assert.Equal(t, "echo hi", Command{Line: "echo hi"}.String())
}
