// Package registry maintains code-to-form.json, the table a survey host uses
// to resolve a participant's survey code to a form file.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pablasso/pairwise/internal/util"
)

// FileName is the registry file inside the output directory.
const FileName = "code-to-form.json"

const maxCodeAttempts = 100

// Registry maps survey codes to form file names.
type Registry struct {
	dir   string
	codes map[string]string
	// NewCode generates candidate codes; replaced in tests.
	NewCode func(taken func(string) bool) (string, error)
}

// Load reads the registry in dir. A missing file yields an empty registry.
func Load(dir string) (*Registry, error) {
	r := &Registry{
		dir:   dir,
		codes: make(map[string]string),
		NewCode: func(taken func(string) bool) (string, error) {
			return util.GenerateUniqueShortID(taken, maxCodeAttempts)
		},
	}

	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	if err := json.Unmarshal(data, &r.codes); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if r.codes == nil {
		r.codes = make(map[string]string)
	}
	return r, nil
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return filepath.Join(r.dir, FileName)
}

// Lookup returns the form file for code.
func (r *Registry) Lookup(code string) (string, bool) {
	form, ok := r.codes[code]
	return form, ok
}

// CodeFor returns the code already assigned to form, if any.
func (r *Registry) CodeFor(form string) (string, bool) {
	for code, f := range r.codes {
		if f == form {
			return code, true
		}
	}
	return "", false
}

// Assignment pairs a code with its form file.
type Assignment struct {
	Code string
	Form string
	New  bool
}

// Assign gives every form without a code a fresh one. Existing codes are
// kept. Results are sorted by form name.
func (r *Registry) Assign(forms []string) ([]Assignment, error) {
	sorted := append([]string(nil), forms...)
	sort.Strings(sorted)

	assignments := make([]Assignment, 0, len(sorted))
	for _, form := range sorted {
		if code, ok := r.CodeFor(form); ok {
			assignments = append(assignments, Assignment{Code: code, Form: form})
			continue
		}
		code, err := r.NewCode(func(c string) bool {
			_, taken := r.codes[c]
			return taken
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate code for %s: %w", form, err)
		}
		r.codes[code] = form
		assignments = append(assignments, Assignment{Code: code, Form: form, New: true})
	}
	return assignments, nil
}

// Save writes the registry with sorted keys.
func (r *Registry) Save() error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", r.dir, err)
	}
	data, err := json.MarshalIndent(r.codes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.WriteFile(r.Path(), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}

// ListForms returns the survey files in dir, excluding the registry itself.
func ListForms(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var forms []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == FileName || strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) == ".json" {
			forms = append(forms, name)
		}
	}
	return forms, nil
}
