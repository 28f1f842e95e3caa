package analyzer

import (
	"fmt"
	"strings"
)

// analysisPrompt builds the per-chunk structured-analysis prompt. The
// response is expected to be bare JSON; fences are tolerated and stripped
// by CleanResponse.
func analysisPrompt(fileType, fragment string, chunkIdx, totalChunks int) string {
	return fmt.Sprintf(`Analyze this Java %s class and provide structured information.
Return ONLY valid JSON with this exact structure (no markdown, no explanation):
{
  "description": "Brief description of the class purpose",
  "methods": [
    {
      "name": "methodName",
      "signature": "public ReturnType methodName(params)",
      "description": "What the method does",
      "complexity": "Low|Medium|High"
    }
  ]
}

Java code (chunk %d of %d):
%s
`, fileType, chunkIdx+1, totalChunks, fragment)
}

// overviewPrompt summarizes the analyzed project by type counts and the
// first few module names.
func overviewPrompt(modules []ModuleInfo) string {
	byType := make(map[string]int)
	for _, m := range modules {
		byType[m.Type]++
	}

	names := make([]string, 0, 10)
	for _, m := range modules {
		if len(names) == 10 {
			break
		}
		names = append(names, m.Name)
	}

	return fmt.Sprintf(`Based on this Java project structure, provide a concise overview (2-3 sentences):

Project has %d modules:
- %d Controllers
- %d Services
- %d DAOs
- %d Models

Module names: %s
`, len(modules), byType["Controller"], byType["Service"], byType["DAO"], byType["Model"],
		strings.Join(names, ", "))
}
