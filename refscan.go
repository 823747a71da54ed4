package webprune

import (
	"fmt"
	"regexp"
	"strings"
)

// FindCSSReferences reports which of the given selectors are referenced
// anywhere in the corpus. Matching is case-insensitive and word-bounded on
// the selector name; the first pattern that matches wins and no further
// patterns are tried for that selector.
func FindCSSReferences(corpus string, selectors SelectorSet) SelectorSet {
	referenced := make(SelectorSet)

	for sel := range selectors {
		for _, re := range cssReferencePatterns(sel) {
			if re.MatchString(corpus) {
				referenced.Add(sel)
				break
			}
		}
	}

	return referenced
}

// cssReferencePatterns builds the search patterns for one selector.
//
// Classes are matched inside class="..." / className="..." attribute values
// and classList.add/remove/toggle/contains calls. IDs are matched in id="..."
// attributes, getElementById calls and querySelector("#...") calls.
func cssReferencePatterns(sel Selector) []*regexp.Regexp {
	name := regexp.QuoteMeta(sel.Name)

	if sel.Kind == SelectorID {
		return []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`(?i)id\s*=\s*["']%s["']`, name)),
			regexp.MustCompile(fmt.Sprintf(`(?i)getElementById\s*\(\s*["']%s["']`, name)),
			regexp.MustCompile(fmt.Sprintf(`(?i)querySelector\s*\(\s*["']#%s["']`, name)),
		}
	}

	return []*regexp.Regexp{
		regexp.MustCompile(fmt.Sprintf(`(?i)class\s*=\s*["'][^"']*\b%s\b[^"']*["']`, name)),
		regexp.MustCompile(fmt.Sprintf(`(?i)className\s*=\s*["'][^"']*\b%s\b[^"']*["']`, name)),
		regexp.MustCompile(fmt.Sprintf(`(?i)classList\.(?:add|remove|toggle|contains)\s*\(\s*["']%s["']`, name)),
	}
}

// FindJSReferences reports which of the given identifiers are referenced in
// the corpus. Unlike CSS matching this is case-sensitive. An identifier
// counts as referenced when it appears as a call (`name(`) or as a bare use
// that is not immediately followed by `=` or `:`. Occurrences sitting right
// after a function/var/let/const keyword are declaration sites, not uses:
// `function foo(){}` alone never marks foo as referenced (see
// TestFindJSReferences_DeclarationIsNotAUse).
func FindJSReferences(corpus string, idents IdentifierSet) IdentifierSet {
	referenced := make(IdentifierSet)

	for name, id := range idents {
		if hasJSUsage(corpus, name) {
			referenced[name] = id
		}
	}

	return referenced
}

var declKeywords = []string{"function", "var", "let", "const"}

// hasJSUsage checks every word-bounded occurrence of name by hand. Go's
// regexp has no lookahead, so the trailing `(?!\s*[=:])` test is emulated by
// inspecting the first non-whitespace byte after the match: an occurrence
// counts as a use unless that byte is '=' or ':'. A call site (`name(`)
// always counts.
func hasJSUsage(corpus, name string) bool {
	wordForm := regexp.MustCompile(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(name)))

	for _, loc := range wordForm.FindAllStringIndex(corpus, -1) {
		if isDeclarationSite(corpus, loc[0]) {
			continue
		}
		rest := corpus[loc[1]:]
		i := 0
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i < len(rest) && (rest[i] == '=' || rest[i] == ':') {
			continue
		}
		return true
	}

	return false
}

// isDeclarationSite reports whether the occurrence starting at pos is
// directly preceded by a declaration keyword.
func isDeclarationSite(corpus string, pos int) bool {
	i := pos
	for i > 0 && isSpace(corpus[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	head := corpus[:i]
	for _, kw := range declKeywords {
		if strings.HasSuffix(head, kw) {
			j := i - len(kw)
			if j == 0 || !isWordByte(head[j-1]) {
				return true
			}
		}
	}
	return false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || b == '$' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
