package chunk

import (
	"sort"
	"strings"
)

// Merge recombines per-fragment generated output into a single document.
// The hint names the kind of module being assembled (Controller, Service,
// ...); it is kept for call-site symmetry and future use, the algorithm
// does not branch on it.
//
// A single fragment is returned unchanged. Otherwise declaration lines
// (trimmed lines starting with "const " that contain "require(") are
// collected into a set keyed by exact text and emitted first, sorted
// lexicographically so the output is diff-stable regardless of which
// fragment introduced a declaration. Near-duplicates that differ in
// whitespace or quote style are NOT collapsed; exact-string matching is
// documented behavior. Lines starting with "module.exports" are dropped
// (the converter re-adds a single export statement afterwards). All
// remaining lines follow in fragment order.
//
// Merge never fails: malformed input yields a merged document that may
// contain duplicated or misplaced logic, never an error.
func Merge(parts []string, hint string) string {
	_ = hint

	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}

	requireSet := make(map[string]struct{})
	var bodyLines []string

	for _, part := range parts {
		for _, line := range strings.Split(part, "\n") {
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "const ") && strings.Contains(line, "require("):
				requireSet[line] = struct{}{}
			case strings.HasPrefix(trimmed, "module.exports"):
				// Re-added once by the converter.
			default:
				bodyLines = append(bodyLines, line)
			}
		}
	}

	var result []string
	if len(requireSet) > 0 {
		requires := make([]string, 0, len(requireSet))
		for line := range requireSet {
			requires = append(requires, line)
		}
		sort.Strings(requires)
		result = append(result, requires...)
		result = append(result, "")
	}
	result = append(result, bodyLines...)

	return strings.Join(result, "\n")
}
