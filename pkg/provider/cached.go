// Package provider contains the caching decorator
package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// Cached wraps a Provider with a prompt-keyed LRU so identical chunks
// are generated once per run. Failed generations are not cached.
type Cached struct {
	inner Provider
	lru   *lru.Cache[string, string]
}

// NewCached creates a caching decorator holding up to size responses.
func NewCached(inner Provider, size int) (*Cached, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, errors.ProviderError("cache init failed", err)
	}
	return &Cached{inner: inner, lru: c}, nil
}

// Generate returns the cached response for prompt, or delegates to the
// wrapped provider and remembers its answer.
func (c *Cached) Generate(ctx context.Context, prompt string) (string, error) {
	key := cacheKey(prompt)
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}

	out, err := c.inner.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	c.lru.Add(key, out)
	return out, nil
}

// Name returns the wrapped provider's name.
func (c *Cached) Name() string { return c.inner.Name() }

// Len returns the number of cached responses.
func (c *Cached) Len() int { return c.lru.Len() }

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
