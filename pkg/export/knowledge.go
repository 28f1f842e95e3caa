// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package export writes the analysis results to a structured knowledge
// file consumable by downstream tooling.
package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// Knowledge is the exported analysis artifact.
type Knowledge struct {
	RunID           string                `json:"runId"`
	GeneratedAt     time.Time             `json:"generatedAt"`
	ProjectOverview string                `json:"projectOverview"`
	Modules         []analyzer.ModuleInfo `json:"modules"`
	Statistics      Statistics            `json:"statistics"`
}

// Statistics summarizes the analyzed modules.
type Statistics struct {
	TotalModules int            `json:"totalModules"`
	ByType       map[string]int `json:"byType"`
}

// Build assembles a Knowledge artifact from the analysis results.
func Build(overview string, modules []analyzer.ModuleInfo) Knowledge {
	byType := make(map[string]int)
	for _, m := range modules {
		byType[m.Type]++
	}
	return Knowledge{
		RunID:           uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		ProjectOverview: overview,
		Modules:         modules,
		Statistics: Statistics{
			TotalModules: len(modules),
			ByType:       byType,
		},
	}
}

// Write serializes the artifact as indented JSON at path.
func Write(k Knowledge, path string) error {
	data, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return errors.AnalysisError("failed to serialize knowledge", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.AnalysisError("failed to write knowledge file", err)
	}
	return nil
}
