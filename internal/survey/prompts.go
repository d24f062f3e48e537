package survey

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PromptTable maps an index to its prompt text.
type PromptTable map[string]string

// LoadPromptTable reads the index2prompt.json file from generationDir.
func LoadPromptTable(generationDir string) (PromptTable, error) {
	path := filepath.Join(generationDir, PromptTableFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fsError("read", path, err)
	}

	var table PromptTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

// Lookup returns the prompt for index or a *PromptLookupError.
func (t PromptTable) Lookup(index string) (string, error) {
	prompt, ok := t[index]
	if !ok {
		return "", &PromptLookupError{Index: index, Table: PromptTableFile}
	}
	return prompt, nil
}
