// Package provider abstracts the text-generation backends used to
// analyze and convert source code. Every backend is polymorphic over a
// single capability: prompt in, generated text out.
package provider

import (
	"context"
)

// Provider generates text from a prompt. Implementations are configured
// at construction time; no package-level state is consulted afterwards.
type Provider interface {
	// Generate sends the prompt to the backend and returns its text
	// response. It blocks until the backend answers or ctx is done.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider id (gemini, ollama, openai, anthropic).
	Name() string
}

// Func adapts a plain generation function to the Provider interface so
// callers can inject a function-typed dependency directly.
type Func func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Name returns "func".
func (f Func) Name() string { return "func" }
