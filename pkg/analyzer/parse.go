package analyzer

import (
	"strings"
)

// fileAnalysis is the JSON shape the analysis prompt asks for.
type fileAnalysis struct {
	Description string       `json:"description"`
	Methods     []MethodInfo `json:"methods"`
}

// CleanResponse strips markdown code fences from a model response so the
// remainder can be parsed as JSON.
func CleanResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}

func cleanOverview(response string) string {
	return strings.TrimSpace(response)
}
