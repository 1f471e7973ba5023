package blueprint

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flaskforge/cli/internal/config"
	fferrors "github.com/flaskforge/cli/internal/errors"
	"github.com/flaskforge/cli/internal/output"
)

func testPaths(t *testing.T) config.ProjectPaths {
	t.Helper()
	paths := config.NewProjectPaths(t.TempDir(), "shop")
	require.NoError(t, os.MkdirAll(paths.Package, 0o755))
	return paths
}

func testGenerator() *Generator {
	return NewGenerator(output.NewLoggerTo(io.Discard, 0))
}

func TestGenerate_CreatesTree(t *testing.T) {
	paths := testPaths(t)

	created, err := testGenerator().Generate("catalog", paths)
	require.NoError(t, err)
	assert.Len(t, created, 4)

	bpDir := filepath.Join(paths.Package, "catalog")
	assert.DirExists(t, bpDir)
	assert.DirExists(t, filepath.Join(bpDir, "templates"))
	assert.DirExists(t, filepath.Join(bpDir, "static"))

	assert.FileExists(t, filepath.Join(bpDir, "routes.py"))
	assert.FileExists(t, filepath.Join(bpDir, "__init__.py"))
	assert.FileExists(t, filepath.Join(bpDir, "forms.py"))
	assert.FileExists(t, filepath.Join(bpDir, "templates", "catalog_home.html"))
}

func TestGenerate_RouteFile(t *testing.T) {
	paths := testPaths(t)

	_, err := testGenerator().Generate("catalog", paths)
	require.NoError(t, err)

	routes, err := os.ReadFile(filepath.Join(paths.Package, "catalog", "routes.py"))
	require.NoError(t, err)

	content := string(routes)
	assert.Contains(t, content, "from flask import Blueprint, render_template")
	assert.Contains(t, content, "catalog = Blueprint('catalog', __name__, template_folder='templates', static_folder='static')")
	assert.Contains(t, content, "@catalog.route('/catalog_home')")
	assert.Contains(t, content, "render_template('catalog/catalog_home.html')")
}

func TestGenerate_PackageInitializer(t *testing.T) {
	paths := testPaths(t)

	_, err := testGenerator().Generate("catalog", paths)
	require.NoError(t, err)

	init, err := os.ReadFile(filepath.Join(paths.Package, "catalog", "__init__.py"))
	require.NoError(t, err)
	assert.Equal(t, "from .routes import catalog", string(init))
}

func TestGenerate_FormStub(t *testing.T) {
	paths := testPaths(t)

	_, err := testGenerator().Generate("catalog", paths)
	require.NoError(t, err)

	forms, err := os.ReadFile(filepath.Join(paths.Package, "catalog", "forms.py"))
	require.NoError(t, err)
	assert.Contains(t, string(forms), "from flask_wtf import FlaskForm")
	assert.Contains(t, string(forms), "StringField, PasswordField, SubmitField")
	assert.Contains(t, string(forms), "DataRequired")
}

func TestGenerate_ChildTemplate(t *testing.T) {
	paths := testPaths(t)

	_, err := testGenerator().Generate("cart", paths)
	require.NoError(t, err)

	home, err := os.ReadFile(filepath.Join(paths.Package, "cart", "templates", "cart_home.html"))
	require.NoError(t, err)

	content := string(home)
	assert.Contains(t, content, `{% extends "base.html" %}`)
	assert.Contains(t, content, "{% block content %}")
	assert.Contains(t, content, "<h1>Welcome to the Cart Home Page</h1>")
	assert.Contains(t, content, "{% endblock %}")
}

func TestGenerate_InvalidName(t *testing.T) {
	paths := testPaths(t)

	_, err := testGenerator().Generate("my-bp", paths)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fferrors.ErrInvalidName))
	assert.Contains(t, err.Error(), "not a valid identifier")
	assert.NoDirExists(t, filepath.Join(paths.Package, "my-bp"))
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "catalog", false},
		{"underscore", "my_bp", false},
		{"leading underscore", "_bp", false},
		{"digits after first", "bp2", false},
		{"leading digit", "2bp", true},
		{"hyphen", "my-bp", true},
		{"space", "my bp", true},
		{"empty", "", true},
		{"python keyword", "class", true},
		{"injection attempt", "a'); import os #", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Cart", capitalize("cart"))
	assert.Equal(t, "Cart", capitalize("CART"))
	assert.Equal(t, "My_bp", capitalize("my_bp"))
	assert.Equal(t, "", capitalize(""))
}
