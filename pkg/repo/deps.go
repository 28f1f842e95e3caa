package repo

import (
	"regexp"
	"sort"
	"strings"
)

// importPattern matches Java import statements.
var importPattern = regexp.MustCompile(`import\s+([\w.]+);`)

// ExtractDependencies returns the import statements of code whose path
// contains filter (case-insensitive), deduplicated and sorted so output
// is deterministic. An empty filter keeps every import.
func ExtractDependencies(code, filter string) []string {
	filter = strings.ToLower(filter)

	seen := make(map[string]struct{})
	for _, m := range importPattern.FindAllStringSubmatch(code, -1) {
		imp := m[1]
		if strings.Contains(strings.ToLower(imp), filter) {
			seen[imp] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for imp := range seen {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}
