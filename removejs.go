package webprune

import (
	"fmt"
	"regexp"
	"strings"
)

// RemoveUnusedJSCode rewrites script text, deleting lines that declare an
// unused identifier: the opening line of a function declaration, or a
// single-line var/let/const declaration. All other lines are kept verbatim.
//
// Only the declaration line is removed — the body of a multi-line function
// stays behind with an orphaned closing brace. Inherited line-scoped
// behavior; the verify pass exists to surface the damage
// (see TestRemoveUnusedJSCode_MultiLineFunctionLeavesBody).
func RemoveUnusedJSCode(text string, unused IdentifierSet) string {
	if len(unused) == 0 {
		return text
	}

	type declPatterns struct {
		function *regexp.Regexp
		variable *regexp.Regexp
	}

	patterns := make([]declPatterns, 0, len(unused))
	for _, name := range unused.Names() {
		quoted := regexp.QuoteMeta(name)
		patterns = append(patterns, declPatterns{
			function: regexp.MustCompile(fmt.Sprintf(`^\s*function\s+%s\s*\(`, quoted)),
			variable: regexp.MustCompile(fmt.Sprintf(`^\s*(?:var|let|const)\s+%s\s*[=;]`, quoted)),
		})
	}

	lines := strings.Split(text, "\n")
	newLines := make([]string, 0, len(lines))

	for _, line := range lines {
		remove := false
		for _, p := range patterns {
			if p.function.MatchString(line) || p.variable.MatchString(line) {
				remove = true
				break
			}
		}
		if !remove {
			newLines = append(newLines, line)
		}
	}

	return strings.Join(newLines, "\n")
}
