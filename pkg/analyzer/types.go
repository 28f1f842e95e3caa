// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package analyzer

// MethodInfo describes a single method extracted from a source file.
type MethodInfo struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Description string `json:"description"`
	Complexity  string `json:"complexity"` // Low, Medium, High
}

// ModuleInfo describes one analyzed source file.
type ModuleInfo struct {
	Name         string       `json:"name"`
	Type         string       `json:"type"` // Controller, Service, DAO, ...
	Description  string       `json:"description"`
	FilePath     string       `json:"file_path"`
	Methods      []MethodInfo `json:"methods"`
	Dependencies []string     `json:"dependencies"`
}
