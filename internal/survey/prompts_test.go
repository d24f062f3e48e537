package survey

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func bytesReader(b []byte) io.Reader { return bytes.NewReader(b) }

func TestLoadPromptTable(t *testing.T) {
	t.Run("parses mapping", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, PromptTableFile), []byte(`{"1": "first", "02": "second"}`), 0644); err != nil {
			t.Fatalf("failed to write prompt table: %v", err)
		}

		table, err := LoadPromptTable(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := table.Lookup("02"); got != "second" {
			t.Errorf("Lookup(02) = %q, want %q", got, "second")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, PromptTableFile), []byte(`[1, 2]`), 0644); err != nil {
			t.Fatalf("failed to write prompt table: %v", err)
		}

		if _, err := LoadPromptTable(dir); err == nil {
			t.Fatal("expected error for non-object table")
		}
	})
}

func TestIndexOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"12.png", "12"},
		{"12.final.jpg", "12.final"},
		{"noext", "noext"},
		{"a.b", "a"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := indexOf(tc.input); got != tc.expected {
				t.Errorf("indexOf(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
