package chunk

import (
	"regexp"
)

// boundaryScanner locates approximate structural boundaries in source
// text. Detection is pattern based: braces inside string literals or
// comments can mis-span a unit. The Chunker's contract does not depend
// on this interface, so the regex implementation can later be swapped
// for an incremental parser.
type boundaryScanner interface {
	// Units returns the top-level class-like blocks found in src.
	Units(src string) []string

	// Header returns the text before the first procedure declaration,
	// or "" when none is found.
	Header(src string) string

	// MethodStarts returns the byte offsets where procedure
	// declarations begin, in order.
	MethodStarts(src string) []int
}

// regexScanner implements boundaryScanner with brace-balance-aware
// patterns that tolerate one level of nested brace pairs inside a unit.
type regexScanner struct {
	class  *regexp.Regexp
	header *regexp.Regexp
	method *regexp.Regexp
}

func newRegexScanner() *regexScanner {
	return &regexScanner{
		// Class body with at most one nested brace level.
		class: regexp.MustCompile(`(?:public|private|protected)?\s*(?:static)?\s*class\s+\w+[^{]*\{(?:[^{}]*\{[^{}]*\})*[^{}]*\}`),
		// Everything up to (but not including) the first method-like
		// declaration: visibility, return type, name, parameter list.
		header: regexp.MustCompile(`(?s)^(.*?)(?:public|private|protected)\s+\w+\s+\w+\s*\([^)]*\)`),
		// Method declaration: visibility, optional static, return type
		// (generics and arrays tolerated), name, parameters, optional
		// throws clause, opening brace.
		method: regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?[\w<>\[\]]+\s+\w+\s*\([^)]*\)\s*(?:throws\s+[\w,\s]+)?\s*\{`),
	}
}

func (s *regexScanner) Units(src string) []string {
	return s.class.FindAllString(src, -1)
}

func (s *regexScanner) Header(src string) string {
	m := s.header.FindStringSubmatch(src)
	if m == nil {
		return ""
	}
	return m[1]
}

func (s *regexScanner) MethodStarts(src string) []int {
	var starts []int
	for _, loc := range s.method.FindAllStringIndex(src, -1) {
		starts = append(starts, loc[0])
	}
	return starts
}
