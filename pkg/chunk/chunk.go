// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package chunk implements structure-aware splitting of source documents
// into fragments that fit an LLM context budget, and the merging of
// independently generated output fragments back into one document.
//
// Splitting respects class and method boundaries where it can find them;
// it is pattern based, not parse based, and makes no guarantees on
// malformed input. Both operations are pure functions over in-memory
// text: no I/O, no shared state, deterministic for identical inputs.
package chunk

import (
	"strings"
)

// charsPerToken is the byte budget assumed per model token.
const charsPerToken = 4

// TokensToChars converts a token budget into the byte ceiling used by the
// Chunker.
func TokensToChars(tokens int) int {
	return tokens * charsPerToken
}

// Chunker splits one document into fragments of at most maxChars bytes.
// A single structural unit that cannot be split further is emitted whole
// even when it exceeds the ceiling; overflow is preferred over truncation.
// Sizes are byte-oriented; the source corpus is ASCII.
type Chunker struct {
	maxChars   int
	boundaries boundaryScanner
}

// NewChunker creates a chunker with the given byte ceiling per fragment.
func NewChunker(maxChars int) *Chunker {
	return &Chunker{
		maxChars:   maxChars,
		boundaries: newRegexScanner(),
	}
}

// Chunk splits document into an ordered, non-empty sequence of fragments.
//
// Top-level class-like units are processed independently: a unit within
// the ceiling becomes one fragment, an oversize unit is decomposed along
// method boundaries. When no structural units are found at all, the raw
// text is sliced into fixed windows of maxChars bytes. The result always
// has at least one element.
func (c *Chunker) Chunk(document string) []string {
	var chunks []string

	units := c.boundaries.Units(document)
	if len(units) > 0 {
		for _, unit := range units {
			if len(unit) <= c.maxChars {
				chunks = append(chunks, unit)
			} else {
				chunks = append(chunks, c.chunkByMethods(unit)...)
			}
		}
	} else {
		chunks = append(chunks, sliceWindows(document, c.maxChars)...)
	}

	if len(chunks) == 0 {
		// Guaranteed non-empty fallback.
		chunks = []string{truncate(document, c.maxChars)}
	}
	return chunks
}

// chunkByMethods splits an oversize unit along procedure declarations.
// The unit's synthetic header (everything before the first declaration,
// typically fields and the class signature) is prefixed to every fragment
// so each stays self-describing. Consecutive procedures are packed
// greedily; a single procedure over the ceiling is emitted whole.
func (c *Chunker) chunkByMethods(unit string) []string {
	header := c.boundaries.Header(unit)

	starts := c.boundaries.MethodStarts(unit)
	if len(starts) == 0 {
		return sliceWindows(unit, c.maxChars)
	}

	bodies := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(unit)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		bodies = append(bodies, unit[start:end])
	}

	var chunks []string
	current := header
	for _, body := range bodies {
		if len(current)+len(body) <= c.maxChars {
			current += body
			continue
		}
		// A bare header carries no logic of its own; only emit fragments
		// that picked up at least one procedure.
		if current != header && strings.TrimSpace(current) != "" {
			chunks = append(chunks, current)
		}
		current = header + body
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// sliceWindows cuts text into consecutive windows of exactly maxChars
// bytes (the last may be shorter), with no boundary awareness.
func sliceWindows(text string, maxChars int) []string {
	var out []string
	for i := 0; i < len(text); i += maxChars {
		end := i + maxChars
		if end > len(text) {
			end = len(text)
		}
		out = append(out, text[i:end])
	}
	return out
}

func truncate(text string, maxChars int) string {
	if len(text) > maxChars {
		return text[:maxChars]
	}
	return text
}
