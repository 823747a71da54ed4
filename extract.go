package webprune

import "regexp"

// Extraction is deliberately context-blind: a name appearing anywhere after
// a '.' or '#' in comment-stripped CSS is a candidate, pseudo-classes,
// at-rules and strings included. The reference scanner decides what is kept.
var (
	cssClassPattern = regexp.MustCompile(`\.([a-zA-Z_-][a-zA-Z0-9_-]*)`)
	cssIDPattern    = regexp.MustCompile(`#([a-zA-Z_-][a-zA-Z0-9_-]*)`)

	jsFunctionPattern = regexp.MustCompile(`function\s+([a-zA-Z_$][a-zA-Z0-9_$]*)`)
	jsVarPattern      = regexp.MustCompile(`(?:var|let|const)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)`)

	cssBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	jsLineComment   = regexp.MustCompile(`(?m)//.*?$`)
)

// ExtractCSSSelectors pulls candidate class and ID selectors out of raw CSS
// text. Block comments are stripped before scanning.
func ExtractCSSSelectors(text string) SelectorSet {
	selectors := make(SelectorSet)
	text = cssBlockComment.ReplaceAllString(text, "")

	for _, m := range cssClassPattern.FindAllStringSubmatch(text, -1) {
		selectors.Add(Selector{Kind: SelectorClass, Name: m[1]})
	}
	for _, m := range cssIDPattern.FindAllStringSubmatch(text, -1) {
		selectors.Add(Selector{Kind: SelectorID, Name: m[1]})
	}

	return selectors
}

// ExtractJSIdentifiers pulls candidate function and variable names out of raw
// JS text. Line and block comments are stripped before scanning. There is no
// scope awareness: nested declarations are captured the same as top-level
// ones.
func ExtractJSIdentifiers(text string) IdentifierSet {
	idents := make(IdentifierSet)
	text = jsLineComment.ReplaceAllString(text, "")
	text = cssBlockComment.ReplaceAllString(text, "")

	for _, m := range jsFunctionPattern.FindAllStringSubmatch(text, -1) {
		idents.Add(Identifier{Name: m[1], Form: DeclFunction})
	}
	for _, m := range jsVarPattern.FindAllStringSubmatch(text, -1) {
		idents.Add(Identifier{Name: m[1], Form: DeclVariable})
	}

	return idents
}
