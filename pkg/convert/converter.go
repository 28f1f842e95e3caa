// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package convert turns analyzed Java modules into Node.js source files.
// Each file is chunked to fit the model context, converted chunk by
// chunk, merged back together and post-processed into one CommonJS file.
package convert

import (
	"context"
	"os"
	"path/filepath"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/chunk"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/observability"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/provider"
)

// Options configures a Converter.
type Options struct {
	// ControllerTokens is the chunk budget for Controller conversions.
	// Controllers get a tighter budget; their prompts carry more
	// instruction overhead.
	ControllerTokens int

	// ConvertTokens is the chunk budget for every other module type.
	ConvertTokens int

	// OutputDir is the root of the generated Node.js tree.
	OutputDir string

	Logger observability.Logger
}

// Converter converts Java modules to Node.js equivalents.
type Converter struct {
	root string
	llm  provider.Provider
	log  observability.Logger

	controllerTokens int
	convertTokens    int
	outDir           string
}

// New creates a Converter reading sources under root.
func New(root string, llm provider.Provider, opts Options) *Converter {
	if opts.ControllerTokens <= 0 {
		opts.ControllerTokens = 2000
	}
	if opts.ConvertTokens <= 0 {
		opts.ConvertTokens = 2500
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "converted"
	}
	if opts.Logger == nil {
		opts.Logger = observability.Nop()
	}
	return &Converter{
		root:             root,
		llm:              llm,
		log:              opts.Logger,
		controllerTokens: opts.ControllerTokens,
		convertTokens:    opts.ConvertTokens,
		outDir:           opts.OutputDir,
	}
}

// generate calls the backend; a failed call degrades to the regex
// fallback rather than aborting the conversion.
func (c *Converter) generate(ctx context.Context, prompt string) string {
	out, err := c.llm.Generate(ctx, prompt)
	if err != nil {
		c.log.Warn("llm call failed during conversion", observability.Err(err))
		return analyzer.FallbackAnalysis(prompt)
	}
	return out
}

// Convert converts one module and writes the result under the output
// directory. It returns the path of the written file.
func (c *Converter) Convert(ctx context.Context, module analyzer.ModuleInfo) (string, error) {
	raw, err := os.ReadFile(filepath.Join(c.root, module.FilePath))
	if err != nil {
		return "", errors.ConversionError("failed to read source file", err)
	}

	budget := c.convertTokens
	if module.Type == "Controller" {
		budget = c.controllerTokens
	}

	chunker := chunk.NewChunker(chunk.TokensToChars(budget))
	chunks := chunker.Chunk(string(raw))
	c.log.Debug("converting module",
		observability.String("module", module.Name),
		observability.Int("chunks", len(chunks)))

	parts := make([]string, 0, len(chunks))
	for i, fragment := range chunks {
		if len(chunks) > 1 {
			c.log.Debug("converting chunk",
				observability.Int("chunk", i+1),
				observability.Int("total", len(chunks)))
		}
		response := c.generate(ctx, conversionPrompt(module, fragment, i, len(chunks)))
		parts = append(parts, CleanResponse(response))
	}

	code := parts[0]
	if len(parts) > 1 {
		code = chunk.Merge(parts, module.Type)
	}
	code = CleanupCode(code, module)

	path, err := c.save(code, module)
	if err != nil {
		return "", err
	}
	c.log.Info("converted module",
		observability.String("module", module.Name),
		observability.String("output", path))
	return path, nil
}
