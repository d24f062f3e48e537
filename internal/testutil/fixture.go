// Package testutil provides testing utilities for the pairwise project.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Generation builds a generation directory fixture: one folder per method,
// an index2prompt.json table and optional reference images.
type Generation struct {
	t   *testing.T
	dir string
}

// NewGeneration creates an empty generation_test directory under a temp dir.
func NewGeneration(t *testing.T) *Generation {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "generation_test")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create generation dir: %v", err)
	}
	return &Generation{t: t, dir: dir}
}

// Method creates a method folder containing the given image files.
func (g *Generation) Method(name string, files ...string) *Generation {
	g.t.Helper()
	g.writeFiles(filepath.Join(g.dir, name), files)
	return g
}

// References creates reference images for the given indices.
func (g *Generation) References(indices ...string) *Generation {
	g.t.Helper()
	files := make([]string, len(indices))
	for i, idx := range indices {
		files[i] = idx + ".png"
	}
	g.writeFiles(filepath.Join(g.dir, "reference_editing_pics"), files)
	return g
}

// Prompts writes the index2prompt.json table.
func (g *Generation) Prompts(prompts map[string]string) *Generation {
	g.t.Helper()
	data, err := json.Marshal(prompts)
	if err != nil {
		g.t.Fatalf("failed to marshal prompts: %v", err)
	}
	if err := os.WriteFile(filepath.Join(g.dir, "index2prompt.json"), data, 0644); err != nil {
		g.t.Fatalf("failed to write prompts: %v", err)
	}
	return g
}

// Dir returns the generation directory path.
func (g *Generation) Dir() string {
	return g.dir
}

func (g *Generation) writeFiles(dir string, files []string) {
	g.t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		g.t.Fatalf("failed to create %s: %v", dir, err)
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0644); err != nil {
			g.t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// SetupTestDir creates a temp directory, resolves symlinks (for macOS),
// changes to it, and registers cleanup to restore the original working directory.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	return tmpDir
}
