// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package runner orchestrates a full conversion run: acquire the
// repository, analyze every source file, export the knowledge artifact,
// then convert one representative Controller, Service and DAO.
package runner

import (
	"context"
	"time"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/convert"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/export"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/observability"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/provider"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/repo"
)

// conversionOrder fixes the order selected modules are converted in so
// runs are reproducible.
var conversionOrder = []string{"Controller", "Service", "DAO"}

// Result summarizes a completed run.
type Result struct {
	Overview       string
	ModuleCount    int
	KnowledgePath  string
	ConvertedFiles []string
	Duration       time.Duration
}

// Runner drives the analyze-and-convert pipeline.
type Runner struct {
	cfg config.Config
	llm provider.Provider
	log observability.Logger
}

// New creates a Runner.
func New(cfg config.Config, llm provider.Provider, log observability.Logger) *Runner {
	if log == nil {
		log = observability.Nop()
	}
	return &Runner{cfg: cfg, llm: llm, log: log}
}

// Run executes the full pipeline and returns its summary. Analysis
// results are exported even when no module qualifies for conversion.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	r.log.Info("starting run", observability.String("provider", r.llm.Name()))

	if !repo.Exists(r.cfg.Repo.Path) {
		r.log.Info("cloning repository",
			observability.String("url", r.cfg.Repo.URL),
			observability.String("path", r.cfg.Repo.Path))
		if err := repo.Clone(ctx, r.cfg.Repo.URL, r.cfg.Repo.Path); err != nil {
			return Result{}, err
		}
	}

	a := analyzer.New(r.cfg.Repo.Path, r.llm, analyzer.Options{
		ChunkTokens:      r.cfg.Chunking.AnalysisTokens,
		RequestDelay:     r.cfg.Global.RequestDelay,
		DependencyFilter: r.cfg.Repo.DependencyFilter,
		IncludeTests:     r.cfg.Repo.IncludeTests,
		Logger:           r.log,
	})

	modules, err := a.AnalyzeCodebase(ctx)
	if err != nil {
		return Result{}, err
	}
	overview := a.Overview(ctx, modules)

	if err := export.Write(export.Build(overview, modules), r.cfg.Output.KnowledgePath); err != nil {
		return Result{}, err
	}
	r.log.Info("knowledge exported",
		observability.String("path", r.cfg.Output.KnowledgePath),
		observability.Int("modules", len(modules)))

	c := convert.New(r.cfg.Repo.Path, r.llm, convert.Options{
		ControllerTokens: r.cfg.Chunking.ControllerTokens,
		ConvertTokens:    r.cfg.Chunking.ConvertTokens,
		OutputDir:        r.cfg.Output.ConvertedDir,
		Logger:           r.log,
	})

	selected := convert.SelectForConversion(modules)

	var converted []string
	for _, moduleType := range conversionOrder {
		module, ok := selected[moduleType]
		if !ok {
			continue
		}
		if err := r.pause(ctx); err != nil {
			return Result{}, err
		}
		path, err := c.Convert(ctx, module)
		if err != nil {
			return Result{}, err
		}
		converted = append(converted, path)
	}

	result := Result{
		Overview:       overview,
		ModuleCount:    len(modules),
		KnowledgePath:  r.cfg.Output.KnowledgePath,
		ConvertedFiles: converted,
		Duration:       time.Since(start),
	}
	r.log.Info("run complete",
		observability.Int("modules", result.ModuleCount),
		observability.Int("converted", len(result.ConvertedFiles)))
	return result, nil
}

// pause waits out the configured request delay, honoring cancellation.
func (r *Runner) pause(ctx context.Context) error {
	if r.cfg.Global.RequestDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(r.cfg.Global.RequestDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
