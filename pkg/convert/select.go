package convert

import (
	"strings"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
)

// SelectForConversion picks one Controller, Service and DAO from the
// analyzed modules, keyed by type. The first Controller anchors the
// choice: its base name (ActorController -> Actor) is used to prefer the
// matching Service and DAO, falling back to the first of each type.
func SelectForConversion(modules []analyzer.ModuleInfo) map[string]analyzer.ModuleInfo {
	selected := make(map[string]analyzer.ModuleInfo)

	var baseName string
	for _, m := range modules {
		if m.Type == "Controller" {
			selected["Controller"] = m
			baseName = strings.ReplaceAll(m.Name, "Controller", "")
			break
		}
	}

	for _, moduleType := range []string{"Service", "DAO"} {
		var candidates []analyzer.ModuleInfo
		for _, m := range modules {
			if m.Type == moduleType {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[0]
		if baseName != "" {
			for _, m := range candidates {
				if strings.HasPrefix(m.Name, baseName) {
					pick = m
					break
				}
			}
		}
		selected[moduleType] = pick
	}

	return selected
}
