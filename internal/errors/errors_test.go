//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrInvalidName, ErrNotFound)
	assert.NotEqual(t, ErrInvalidName, ErrProcess)
	assert.NotEqual(t, ErrNotFound, ErrProcess)
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrProcess, "pip install flask")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrProcess))
	assert.Contains(t, err.Error(), "pip install flask")
}
