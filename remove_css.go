package webprune

import "strings"

// RemoveUnusedCSSRules rewrites stylesheet text, deleting every rule block
// whose selector list is fully covered by the unused set. Rules are tracked
// line by line with a brace depth counter so multi-line bodies are removed
// whole, including nested blocks; lines outside any rule are kept unchanged.
// Inside a kept rule, body lines that mention an unused name are dropped
// individually.
//
// Coverage is a substring containment test against the unused names in
// source form: an unused ".foo" also covers a selector spelled ".foobar".
// That over-deletion is part of the contract (see
// TestRemoveUnusedCSSRules_SubstringContainment), not something to fix here.
func RemoveUnusedCSSRules(text string, unused SelectorSet) string {
	if len(unused) == 0 {
		return text
	}

	unusedNames := unused.Strings()

	lines := strings.Split(text, "\n")
	newLines := make([]string, 0, len(lines))

	inRule := false
	ruleKept := false
	braceDepth := 0
	var ruleSelectors []string

	for _, line := range lines {
		switch {
		case !inRule && strings.Contains(line, "{"):
			// Opening line: cache the selector list and seed the depth
			// from this line's brace balance.
			selectorPart := line[:strings.Index(line, "{")]
			ruleSelectors = splitSelectors(selectorPart)
			braceDepth = strings.Count(line, "{") - strings.Count(line, "}")
			keep := hasUsedSelector(ruleSelectors, unusedNames)

			if braceDepth == 0 {
				// Rule opens and closes on one line; no state carries over.
				if keep {
					newLines = append(newLines, line)
				}
			} else {
				inRule = true
				ruleKept = keep
				if keep {
					newLines = append(newLines, line)
				}
			}

		case inRule:
			braceDepth += strings.Count(line, "{") - strings.Count(line, "}")

			if braceDepth == 0 {
				// Closing line: same keep/drop decision as the opener,
				// against the cached selector list.
				inRule = false
				if hasUsedSelector(ruleSelectors, unusedNames) {
					newLines = append(newLines, line)
				}
			} else if !ruleKept {
				// Body of a dropped rule goes with it.
				continue
			} else if containsAny(line, unusedNames) {
				continue
			} else {
				newLines = append(newLines, line)
			}

		default:
			newLines = append(newLines, line)
		}
	}

	return strings.Join(newLines, "\n")
}

// splitSelectors breaks a comma-separated selector list into trimmed tokens.
func splitSelectors(selectorPart string) []string {
	parts := strings.Split(selectorPart, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// hasUsedSelector reports whether at least one selector in the list is not
// covered by any unused name. Pseudo-class and pseudo-element suffixes are
// stripped before the containment check.
func hasUsedSelector(selectors []string, unusedNames []string) bool {
	for _, sel := range selectors {
		clean := sel
		if i := strings.Index(clean, ":"); i >= 0 {
			clean = clean[:i]
		}
		if !containsAny(clean, unusedNames) {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any of the names as a substring.
func containsAny(s string, names []string) bool {
	for _, name := range names {
		if strings.Contains(s, name) {
			return true
		}
	}
	return false
}
