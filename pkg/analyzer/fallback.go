package analyzer

import (
	"encoding/json"
	"regexp"
)

// fallbackMethodPattern pulls public method names out of raw source text.
var fallbackMethodPattern = regexp.MustCompile(`public\s+\w+\s+(\w+)\s*\([^)]*\)`)

// maxFallbackMethods caps the number of methods reported by the fallback.
const maxFallbackMethods = 5

// FallbackAnalysis produces a degraded analysis result from the prompt
// text alone, for when the backend is unreachable. The output is the same
// JSON shape the analysis prompt asks for, so the caller's parse path
// stays uniform.
func FallbackAnalysis(codeContext string) string {
	matches := fallbackMethodPattern.FindAllStringSubmatch(codeContext, -1)

	methods := make([]MethodInfo, 0, maxFallbackMethods)
	for _, m := range matches {
		if len(methods) == maxFallbackMethods {
			break
		}
		methods = append(methods, MethodInfo{
			Name:        m[1],
			Signature:   "public void " + m[1] + "()",
			Description: "Method extracted via regex",
			Complexity:  "Medium",
		})
	}

	out, err := json.Marshal(fileAnalysis{
		Description: "Automated analysis (LLM unavailable)",
		Methods:     methods,
	})
	if err != nil {
		return `{"description": "Automated analysis (LLM unavailable)", "methods": []}`
	}
	return string(out)
}
