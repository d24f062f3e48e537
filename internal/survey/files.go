package survey

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// listFiles returns the names of the non-hidden regular files in the
// method's folder.
func listFiles(m Method) (map[string]bool, error) {
	info, err := os.Stat(m.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrDirectoryNotFound, m.Name, m.Dir)
		}
		return nil, fsError("stat", m.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s (%s is not a directory)", ErrDirectoryNotFound, m.Name, m.Dir)
	}

	entries, err := os.ReadDir(m.Dir)
	if err != nil {
		return nil, fsError("read", m.Dir, err)
	}

	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || entry.IsDir() {
			continue
		}
		if !entry.Type().IsRegular() {
			// Follow symlinks; skip sockets, pipes and dangling links.
			fi, err := os.Stat(filepath.Join(m.Dir, entry.Name()))
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		names[entry.Name()] = true
	}
	return names, nil
}

// commonFiles returns the sorted intersection of a and b.
func commonFiles(a, b map[string]bool) []string {
	var common []string
	for name := range a {
		if b[name] {
			common = append(common, name)
		}
	}
	sort.Strings(common)
	return common
}

// indexOf strips the last extension from a filename.
func indexOf(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
