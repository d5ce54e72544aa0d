package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustChdir changes into dir for the duration of the test.
func mustChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestFindingStringKeepsRelativePath(t *testing.T) {
	f := Finding{Path: "proj/pyproject.toml", Tool: "mypy", Reason: "tool.mypy section"}
	assert.Equal(t, "proj/pyproject.toml:mypy:tool.mypy section", f.String())
}

func TestFindingStringRelativizesInsideCwd(t *testing.T) {
	dir := t.TempDir()
	mustChdir(t, dir)
	// The temp dir may itself sit behind a symlink; resolve the walked form.
	cwd, err := os.Getwd()
	require.NoError(t, err)

	f := Finding{Path: filepath.Join(cwd, "sub", "setup.cfg"), Tool: "pylint", Reason: "pylint section"}
	assert.Equal(t, filepath.Join("sub", "setup.cfg")+":pylint:pylint section", f.String())
}

func TestFindingStringKeepsPathOutsideCwd(t *testing.T) {
	mustChdir(t, t.TempDir())
	f := Finding{Path: "/srv/repo/tox.ini", Tool: "pytest", Reason: "pytest section"}
	assert.Equal(t, "/srv/repo/tox.ini:pytest:pytest section", f.String())
}

// Field order is part of the output contract: path, then tool, then reason,
// and the raw path survives untouched.
func TestFindingJSONFieldOrder(t *testing.T) {
	mustChdir(t, t.TempDir())
	out, err := json.Marshal(Finding{Path: "./pyproject.toml", Tool: "mypy", Reason: "tool.mypy section"})
	require.NoError(t, err)
	assert.Equal(t, `{"path":"./pyproject.toml","tool":"mypy","reason":"tool.mypy section"}`, string(out))
}
