package convert_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/convert"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/provider"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"strips fences",
			"```javascript\nconst x = require('x');\n```",
			"const x = require('x');",
		},
		{
			"drops preamble before code",
			"Here is the converted code:\n\nconst x = require('x');\nfoo();",
			"const x = require('x');\nfoo();",
		},
		{
			"comment starts code",
			"Sure!\n// routes\nconst x = 1;",
			"// routes\nconst x = 1;",
		},
		{
			"doc comment starts code",
			"explanation\n/**\n * Foo\n */\nconst x = 1;",
			"/**\n * Foo\n */\nconst x = 1;",
		},
		{
			"exports alone",
			"text\nmodule.exports = {};",
			"module.exports = {};",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convert.CleanResponse(tt.in); got != tt.want {
				t.Errorf("CleanResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanupCodeDedupesRequires(t *testing.T) {
	module := analyzer.ModuleInfo{Name: "ActorService", Type: "Service"}
	code := `const db = require('../db');
const db = require('../db');
async function findAll() {}
module.exports = { findAll };`

	got := convert.CleanupCode(code, module)
	if strings.Count(got, "const db = require('../db');") != 1 {
		t.Errorf("Duplicate require not collapsed:\n%s", got)
	}
}

func TestCleanupCodeAddsRouterExports(t *testing.T) {
	module := analyzer.ModuleInfo{Name: "ActorController", Type: "Controller"}
	code := `const express = require('express');
const router = express.Router();
router.get('/', async (req, res) => { res.json([]); });`

	got := convert.CleanupCode(code, module)
	if !strings.Contains(got, "module.exports = router;") {
		t.Errorf("Missing router export:\n%s", got)
	}
}

func TestCleanupCodeAddsFunctionExports(t *testing.T) {
	module := analyzer.ModuleInfo{Name: "ActorService", Type: "Service"}
	code := `async function findAll() {}
function findOne(id) {}`

	got := convert.CleanupCode(code, module)
	if !strings.Contains(got, "findAll") || !strings.Contains(got, "findOne") {
		t.Fatalf("Function names missing from exports:\n%s", got)
	}
	if !strings.Contains(got, "module.exports = {") {
		t.Errorf("Missing exports object:\n%s", got)
	}
}

func TestCleanupCodeAddsHeader(t *testing.T) {
	module := analyzer.ModuleInfo{Name: "ActorService", Type: "Service"}
	got := convert.CleanupCode("module.exports = {};", module)

	if !strings.HasPrefix(got, "/**") {
		t.Errorf("Missing header comment:\n%s", got)
	}
	if !strings.Contains(got, "Converted from Java Service to Node.js") {
		t.Errorf("Header missing provenance line:\n%s", got)
	}

	// A file already starting with a doc comment is left alone.
	withHeader := "/** mine */\nmodule.exports = {};"
	if got := convert.CleanupCode(withHeader, module); strings.Count(got, "/*") != 1 {
		t.Errorf("Second header added:\n%s", got)
	}
}

func TestSelectForConversion(t *testing.T) {
	modules := []analyzer.ModuleInfo{
		{Name: "FilmController", Type: "Controller"},
		{Name: "ActorController", Type: "Controller"},
		{Name: "ActorService", Type: "Service"},
		{Name: "FilmService", Type: "Service"},
		{Name: "CategoryRepository", Type: "DAO"},
		{Name: "FilmRepository", Type: "DAO"},
	}

	selected := convert.SelectForConversion(modules)

	if selected["Controller"].Name != "FilmController" {
		t.Errorf("Controller = %s, want first controller", selected["Controller"].Name)
	}
	// Service and DAO follow the controller's base name.
	if selected["Service"].Name != "FilmService" {
		t.Errorf("Service = %s, want FilmService", selected["Service"].Name)
	}
	if selected["DAO"].Name != "FilmRepository" {
		t.Errorf("DAO = %s, want FilmRepository", selected["DAO"].Name)
	}
}

func TestSelectForConversionNoController(t *testing.T) {
	modules := []analyzer.ModuleInfo{
		{Name: "ActorService", Type: "Service"},
		{Name: "FilmService", Type: "Service"},
	}

	selected := convert.SelectForConversion(modules)
	if _, ok := selected["Controller"]; ok {
		t.Error("Controller selected from modules without one")
	}
	if selected["Service"].Name != "ActorService" {
		t.Errorf("Service = %s, want first candidate", selected["Service"].Name)
	}
}

func TestConvertWritesRoutedOutput(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()

	src := `public class ActorController {
    public String listActors() { return "all"; }
}`
	if err := os.WriteFile(filepath.Join(root, "ActorController.java"), []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	llm := provider.Func(func(_ context.Context, _ string) (string, error) {
		return `const express = require('express');
const router = express.Router();
router.get('/', async (req, res) => { res.json([]); });
module.exports = router;`, nil
	})

	c := convert.New(root, llm, convert.Options{OutputDir: outDir})
	module := analyzer.ModuleInfo{
		Name:     "ActorController",
		Type:     "Controller",
		FilePath: "ActorController.java",
	}

	path, err := c.Convert(context.Background(), module)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if filepath.Base(path) != "actor.route.js" {
		t.Errorf("Output file = %s, want actor.route.js", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != "routes" {
		t.Errorf("Output dir = %s, want routes", filepath.Dir(path))
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(written), "module.exports = router;") {
		t.Errorf("Output missing router export:\n%s", written)
	}
	if !strings.HasPrefix(string(written), "/**") {
		t.Errorf("Output missing provenance header:\n%s", written)
	}
}

func TestConvertMergesMultipleChunks(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()

	// Two methods, each near the chunk ceiling, force a multi-chunk
	// conversion.
	pad := strings.Repeat("        filler();\n", 40)
	src := "public class BulkService {\n" +
		"    public void first() {\n" + pad + "    }\n" +
		"    public void second() {\n" + pad + "    }\n" +
		"}"
	if err := os.WriteFile(filepath.Join(root, "BulkService.java"), []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	calls := 0
	llm := provider.Func(func(_ context.Context, _ string) (string, error) {
		calls++
		return "const db = require('../db');\nasync function op" +
			strings.Repeat("x", calls) + "() {}", nil
	})

	c := convert.New(root, llm, convert.Options{ConvertTokens: 200, OutputDir: outDir})
	module := analyzer.ModuleInfo{
		Name:     "BulkService",
		Type:     "Service",
		FilePath: "BulkService.java",
	}

	path, err := c.Convert(context.Background(), module)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if calls < 2 {
		t.Fatalf("Expected multiple conversion calls, got %d", calls)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	// The shared require collapses to one line after the merge.
	if strings.Count(string(written), "const db = require('../db');") != 1 {
		t.Errorf("Require not deduplicated across chunks:\n%s", written)
	}
	if !strings.Contains(string(written), "module.exports = {") {
		t.Errorf("Missing exports for merged functions:\n%s", written)
	}
}

func TestSaveFileNames(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()
	llm := provider.Func(func(_ context.Context, _ string) (string, error) {
		return "const x = 1;\nmodule.exports = {};", nil
	})
	c := convert.New(root, llm, convert.Options{OutputDir: outDir})

	tests := []struct {
		module analyzer.ModuleInfo
		want   string
	}{
		{analyzer.ModuleInfo{Name: "ActorRepository", Type: "DAO"}, "repositories/actor.repository.js"},
		{analyzer.ModuleInfo{Name: "FilmDAO", Type: "DAO"}, "repositories/film.repository.js"},
		{analyzer.ModuleInfo{Name: "Actor", Type: "Model"}, "models/Actor.js"},
		{analyzer.ModuleInfo{Name: "DateUtils", Type: "Utility"}, "DateUtils.js"},
	}
	for _, tt := range tests {
		tt.module.FilePath = tt.module.Name + ".java"
		if err := os.WriteFile(filepath.Join(root, tt.module.FilePath), []byte("class X {}"), 0644); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}

		path, err := c.Convert(context.Background(), tt.module)
		if err != nil {
			t.Fatalf("Convert(%s) failed: %v", tt.module.Name, err)
		}
		rel, err := filepath.Rel(outDir, path)
		if err != nil {
			t.Fatalf("Rel failed: %v", err)
		}
		if filepath.ToSlash(rel) != tt.want {
			t.Errorf("Output for %s = %s, want %s", tt.module.Name, rel, tt.want)
		}
	}
}
