// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package analyzer extracts structured knowledge from a source tree by
// chunking each file and asking an LLM backend to describe it. Provider
// failures degrade to a regex-based fallback, never to an analysis error.
package analyzer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/chunk"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/observability"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/provider"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/repo"
)

// Options configures an Analyzer.
type Options struct {
	// ChunkTokens is the per-chunk token budget for analysis prompts.
	ChunkTokens int

	// RequestDelay is the pause before each file's analysis, to stay
	// under provider rate limits. Zero disables the pause.
	RequestDelay time.Duration

	// DependencyFilter is passed through to repo.ExtractDependencies.
	DependencyFilter string

	// IncludeTests keeps test files in the scan.
	IncludeTests bool

	Logger observability.Logger
}

// Analyzer walks a source tree and produces ModuleInfo records.
type Analyzer struct {
	root string
	llm  provider.Provider
	log  observability.Logger

	chunkTokens  int
	delay        time.Duration
	depFilter    string
	includeTests bool
}

// New creates an Analyzer rooted at the repository checkout.
func New(root string, llm provider.Provider, opts Options) *Analyzer {
	if opts.ChunkTokens <= 0 {
		opts.ChunkTokens = 3000
	}
	if opts.Logger == nil {
		opts.Logger = observability.Nop()
	}
	return &Analyzer{
		root:         root,
		llm:          llm,
		log:          opts.Logger,
		chunkTokens:  opts.ChunkTokens,
		delay:        opts.RequestDelay,
		depFilter:    opts.DependencyFilter,
		includeTests: opts.IncludeTests,
	}
}

// generate calls the backend and substitutes a regex-derived placeholder
// when the call fails. Downstream parsing never sees provider errors.
func (a *Analyzer) generate(ctx context.Context, prompt string) string {
	out, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		a.log.Warn("llm call failed, using fallback analysis", observability.Err(err))
		return FallbackAnalysis(prompt)
	}
	return out
}

// AnalyzeFile reads and analyzes a single source file.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (ModuleInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ModuleInfo{}, errors.AnalysisError("failed to read source file", err)
	}
	content := string(raw)

	fileType := repo.Categorize(path, repo.Head(content))
	deps := repo.ExtractDependencies(content, a.depFilter)

	chunker := chunk.NewChunker(chunk.TokensToChars(a.chunkTokens))
	chunks := chunker.Chunk(content)

	var methods []MethodInfo
	var description string

	for i, fragment := range chunks {
		if len(chunks) > 1 {
			a.log.Debug("processing chunk",
				observability.Int("chunk", i+1),
				observability.Int("total", len(chunks)))
		}

		response := a.generate(ctx, analysisPrompt(fileType.String(), fragment, i, len(chunks)))

		var parsed fileAnalysis
		if err := json.Unmarshal([]byte(CleanResponse(response)), &parsed); err != nil {
			if i == 0 {
				description = "Analysis unavailable"
			}
			continue
		}

		if i == 0 && parsed.Description != "" {
			description = parsed.Description
		}
		for _, m := range parsed.Methods {
			if m.Name == "" {
				m.Name = "unknown"
			}
			if m.Complexity == "" {
				m.Complexity = "Medium"
			}
			methods = append(methods, m)
		}
	}

	rel, err := filepath.Rel(a.root, path)
	if err != nil {
		rel = path
	}

	return ModuleInfo{
		Name:         repo.Stem(path),
		Type:         fileType.String(),
		Description:  description,
		FilePath:     rel,
		Methods:      methods,
		Dependencies: deps,
	}, nil
}

// AnalyzeCodebase scans the tree and analyzes every source file in order.
// Files are processed sequentially; the configured request delay runs
// before each one.
func (a *Analyzer) AnalyzeCodebase(ctx context.Context) ([]ModuleInfo, error) {
	files, err := repo.FindSourceFiles(a.root, a.includeTests)
	if err != nil {
		return nil, errors.AnalysisError("failed to scan source files", err)
	}
	a.log.Info("scanning source files", observability.Int("count", len(files)))

	modules := make([]ModuleInfo, 0, len(files))
	for i, path := range files {
		a.log.Info("analyzing file",
			observability.Int("index", i+1),
			observability.Int("total", len(files)),
			observability.String("file", filepath.Base(path)))

		if a.delay > 0 {
			select {
			case <-time.After(a.delay):
			case <-ctx.Done():
				return modules, errors.TimeoutError("analysis cancelled", ctx.Err())
			}
		}

		module, err := a.AnalyzeFile(ctx, path)
		if err != nil {
			return modules, err
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// Overview asks the backend for a short project summary derived from the
// analyzed modules.
func (a *Analyzer) Overview(ctx context.Context, modules []ModuleInfo) string {
	response := a.generate(ctx, overviewPrompt(modules))
	return cleanOverview(response)
}
