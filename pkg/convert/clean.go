package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
)

// funcNamePattern extracts declared function names for module.exports.
var funcNamePattern = regexp.MustCompile(`(?:async\s+)?function\s+(\w+)\s*\(`)

// CleanResponse extracts just the code from a model response: markdown
// fences are removed and any explanatory preamble before the first line
// of code is dropped.
func CleanResponse(response string) string {
	response = strings.ReplaceAll(response, "```javascript", "")
	response = strings.ReplaceAll(response, "```js", "")
	response = strings.ReplaceAll(response, "```", "")

	lines := strings.Split(response, "\n")
	started := false
	var kept []string
	for _, line := range lines {
		if !started {
			t := strings.TrimSpace(line)
			if strings.HasPrefix(t, "const ") ||
				strings.HasPrefix(t, "/**") ||
				strings.HasPrefix(t, "//") ||
				strings.HasPrefix(t, "module.exports") {
				started = true
			}
		}
		if started {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// CleanupCode post-processes a converted file: duplicate require lines
// are collapsed, a module.exports is appended when the model forgot one,
// and a provenance header comment is prepended.
func CleanupCode(code string, module analyzer.ModuleInfo) string {
	code = dedupeRequires(code)

	if !strings.Contains(code, "module.exports") {
		code = addModuleExports(code, module)
	}

	if !strings.HasPrefix(code, "/**") {
		header := fmt.Sprintf(`/**
 * %s
 * Converted from Java %s to Node.js
 * Type: %s
 */

`, module.Name, module.Type, module.Type)
		code = header + code
	}
	return code
}

// dedupeRequires drops repeated require lines, keyed by exact text.
func dedupeRequires(code string) string {
	lines := strings.Split(code, "\n")
	seen := make(map[string]struct{})
	var kept []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "const ") && strings.Contains(line, "require(") {
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// addModuleExports appends the exports statement appropriate for the
// module type: routers export themselves, everything else exports its
// declared functions. Code with neither is returned unchanged.
func addModuleExports(code string, module analyzer.ModuleInfo) string {
	if module.Type == "Controller" && strings.Contains(code, "const router") {
		return code + "\n\nmodule.exports = router;\n"
	}

	var names []string
	for _, m := range funcNamePattern.FindAllStringSubmatch(code, -1) {
		names = append(names, m[1])
	}
	if len(names) > 0 {
		return code + fmt.Sprintf("\n\nmodule.exports = {\n    %s\n};\n",
			strings.Join(names, ",\n    "))
	}
	return code
}
