package repo

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// headLines is how much of a file the categorizer looks at.
const headLines = 50

// FindSourceFiles returns all .java files under root in lexical order.
// Files whose path relative to root contains "test" (case-insensitive)
// are skipped unless includeTests is set; the root's own location never
// affects the check.
func FindSourceFiles(root string, includeTests bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".java" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if !includeTests && strings.Contains(strings.ToLower(rel), "test") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Head returns the first headLines lines of content.
func Head(content string) string {
	lines := strings.SplitN(content, "\n", headLines+1)
	if len(lines) > headLines {
		lines = lines[:headLines]
	}
	return strings.Join(lines, "\n")
}

// Stem returns the file name without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
