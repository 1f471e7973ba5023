package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("shop", nil))
}

func TestRenderFileTree(t *testing.T) {
	files := map[string]string{
		"run.py":           "",
		"Dockerfile":       "Container build file",
		"shop/__init__.py": "Application factory",
		"shop/models.py":   "Model definitions",
	}

	out := RenderFileTree("shop", files)

	assert.Contains(t, out, "shop/")
	assert.Contains(t, out, "run.py")
	assert.Contains(t, out, "__init__.py")
	assert.Contains(t, out, "Container build file")

	// Directories render before files at each level.
	lines := strings.Split(out, "\n")
	dirIdx, fileIdx := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "shop/") && i > 0 && dirIdx == -1 {
			dirIdx = i
		}
		if strings.Contains(l, "Dockerfile") {
			fileIdx = i
		}
	}
	assert.Greater(t, fileIdx, dirIdx)
}
