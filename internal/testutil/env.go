// Package testutil provides utilities for testing quilter in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Env describes the isolated directories created by SetupTestEnv.
type Env struct {
	// ProjectRoot is an empty project directory; QUILTER_PROJECT_ROOT points here.
	ProjectRoot string
	// CacheDir is the archive cache; QUILTER_CACHE_DIR points here.
	CacheDir string
}

// SetupTestEnv creates isolated test directories and points the QUILTER_*
// variables at them, so tests never touch the real project or the user's
// download cache. QUILTER_CONFIG is unset so the project default applies.
//
// Cleanup is handled by t.TempDir() and t.Setenv().
func SetupTestEnv(t *testing.T) *Env {
	t.Helper()

	tmpDir := t.TempDir()
	env := &Env{
		ProjectRoot: filepath.Join(tmpDir, "project"),
		CacheDir:    filepath.Join(tmpDir, "cache"),
	}

	for _, dir := range []string{env.ProjectRoot, env.CacheDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	t.Setenv("QUILTER_PROJECT_ROOT", env.ProjectRoot)
	t.Setenv("QUILTER_CACHE_DIR", env.CacheDir)
	t.Setenv("QUILTER_LOG_LEVEL", "error")
	t.Setenv("QUILTER_LOG_FORMAT", "console")

	t.Setenv("QUILTER_CONFIG", "")
	os.Unsetenv("QUILTER_CONFIG")

	return env
}

// WriteConfig writes a quilter.lua into the project root.
func (e *Env) WriteConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(e.ProjectRoot, "quilter.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
