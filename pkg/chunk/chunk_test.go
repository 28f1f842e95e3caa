package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildClass assembles a small Java class with the given method bodies.
func buildClass(name string, methods ...string) string {
	var b strings.Builder
	b.WriteString("public class " + name + " {\n")
	b.WriteString("    private int counter;\n")
	for _, m := range methods {
		b.WriteString(m)
	}
	b.WriteString("}")
	return b.String()
}

func method(name, body string) string {
	return "    public void " + name + "() {\n        " + body + "\n    }\n"
}

// splitAt returns the synthetic header and the per-method bodies of doc,
// cut at the byte offsets of the given method declarations.
func splitAt(t *testing.T, doc string, names ...string) (string, []string) {
	t.Helper()
	offsets := make([]int, 0, len(names))
	for _, n := range names {
		idx := strings.Index(doc, "public void "+n)
		require.GreaterOrEqual(t, idx, 0, "method %s not found", n)
		offsets = append(offsets, idx)
	}
	header := doc[:offsets[0]]
	bodies := make([]string, 0, len(offsets))
	for i, start := range offsets {
		end := len(doc)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		bodies = append(bodies, doc[start:end])
	}
	return header, bodies
}

func TestChunkEmptyDocument(t *testing.T) {
	c := NewChunker(100)
	got := c.Chunk("")
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0])
}

func TestChunkSmallClassSingleFragment(t *testing.T) {
	doc := buildClass("Small", method("ping", "counter++;"))
	c := NewChunker(10000)

	got := c.Chunk(doc)
	require.Len(t, got, 1)
	assert.Equal(t, doc, got[0])
}

func TestChunkFallbackSlicing(t *testing.T) {
	doc := strings.Repeat("x", 10000)
	c := NewChunker(100)

	got := c.Chunk(doc)
	require.Len(t, got, 100)
	for i, frag := range got {
		assert.Len(t, frag, 100, "fragment %d", i)
	}
	assert.Equal(t, doc, strings.Join(got, ""))
}

func TestChunkFallbackLastWindowShorter(t *testing.T) {
	doc := strings.Repeat("y", 250)
	c := NewChunker(100)

	got := c.Chunk(doc)
	require.Len(t, got, 3)
	assert.Len(t, got[2], 50)
	assert.Equal(t, doc, strings.Join(got, ""))
}

func TestChunkSizeCeilingForSmallUnits(t *testing.T) {
	doc := buildClass("A", method("one", "counter++;")) + "\n" +
		buildClass("B", method("two", "counter--;"))
	max := 10000
	c := NewChunker(max)

	got := c.Chunk(doc)
	require.Len(t, got, 2)
	for _, frag := range got {
		assert.LessOrEqual(t, len(frag), max)
	}
}

func TestChunkOversizeClassSplitsOnMethods(t *testing.T) {
	doc := buildClass("Wide",
		method("alpha", strings.Repeat("a();", 30)),
		method("beta", strings.Repeat("b();", 30)),
		method("gamma", strings.Repeat("c();", 30)))
	header, bodies := splitAt(t, doc, "alpha", "beta", "gamma")

	// Big enough for the header plus one method, not two.
	max := len(header) + len(bodies[0]) + 8
	require.Greater(t, len(doc), max)

	c := NewChunker(max)
	got := c.Chunk(doc)
	require.Greater(t, len(got), 1)

	var rejoined strings.Builder
	rejoined.WriteString(header)
	for _, frag := range got {
		require.True(t, strings.HasPrefix(frag, header),
			"every fragment carries the synthetic header")
		rejoined.WriteString(strings.TrimPrefix(frag, header))
	}
	// Header plus concatenated bodies reproduces the whole unit.
	assert.Equal(t, doc, rejoined.String())
}

func TestChunkGreedyPacking(t *testing.T) {
	doc := buildClass("Packed",
		method("alpha", "a();"),
		method("beta", "b();"),
		method("gamma", strings.Repeat("c();", 60)))
	header, bodies := splitAt(t, doc, "alpha", "beta", "gamma")

	// The first two methods pack into one fragment, the third starts anew.
	max := len(header) + len(bodies[0]) + len(bodies[1])
	require.Greater(t, len(doc), max)

	c := NewChunker(max)
	got := c.Chunk(doc)
	require.Len(t, got, 2)
	assert.Equal(t, header+bodies[0]+bodies[1], got[0])
	assert.Equal(t, header+bodies[2], got[1])
}

func TestChunkOversizeSingleMethodEmittedWhole(t *testing.T) {
	doc := buildClass("One", method("huge", strings.Repeat("work();", 200)))
	max := 200
	require.Greater(t, len(doc), max)

	c := NewChunker(max)
	got := c.Chunk(doc)

	require.Len(t, got, 1)
	assert.Greater(t, len(got[0]), max, "oversize unit overflows, never truncated")
	assert.Equal(t, doc, got[0])
}

func TestChunkNonEmptyForAnyInput(t *testing.T) {
	inputs := []string{"", "x", "{{{{", "no structure here", strings.Repeat("}", 500)}
	c := NewChunker(64)
	for _, in := range inputs {
		got := c.Chunk(in)
		assert.GreaterOrEqual(t, len(got), 1, "input %q", in)
	}
}

func TestChunkDeterministic(t *testing.T) {
	doc := buildClass("Det",
		method("alpha", strings.Repeat("a();", 50)),
		method("beta", strings.Repeat("b();", 50)))
	c := NewChunker(300)

	first := c.Chunk(doc)
	second := c.Chunk(doc)
	assert.Equal(t, first, second)
}

func TestTokensToChars(t *testing.T) {
	assert.Equal(t, 12000, TokensToChars(3000))
}
