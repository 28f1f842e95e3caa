package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// save writes the converted code under the output directory, routed by
// module type into the conventional Express project layout.
func (c *Converter) save(code string, module analyzer.ModuleInfo) (string, error) {
	var subdir, fileName string

	switch module.Type {
	case "Controller":
		subdir = "routes"
		fileName = strings.ToLower(strings.ReplaceAll(module.Name, "Controller", "")) + ".route.js"
	case "Service":
		subdir = "services"
		fileName = module.Name + ".js"
	case "DAO":
		base := strings.ReplaceAll(module.Name, "Repository", "")
		base = strings.ReplaceAll(base, "DAO", "")
		subdir = "repositories"
		fileName = strings.ToLower(base) + ".repository.js"
	case "Model":
		subdir = "models"
		fileName = module.Name + ".js"
	default:
		fileName = module.Name + ".js"
	}

	dir := filepath.Join(c.outDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.ConversionError("failed to create output directory", err)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return "", errors.ConversionError("failed to write converted file", err)
	}
	return path, nil
}
