// Package webprune finds CSS selectors and JavaScript identifiers that are
// declared in a project but never referenced anywhere else in it, and rewrites
// the source files to delete the unused declarations.
//
// # Detection
//
// Detection is a textual heuristic, not a parse. Candidate declarations are
// pulled out of each stylesheet or script with regular expressions, then
// checked against a corpus snapshot of the project's markup and script text:
//
//	project, err := webprune.ScanProject("web", nil, nil)
//	selectors := webprune.ExtractCSSSelectors(cssText)
//	referenced := webprune.FindCSSReferences(corpus, selectors)
//	unused := selectors.Diff(referenced)
//
// # Removal
//
// Removal rewrites the original text. CSS rule blocks are deleted whole,
// tracking brace nesting across multi-line rules; JS declarations are deleted
// line by line:
//
//	cleaned := webprune.RemoveUnusedCSSRules(cssText, unused)
//
// Run ties the stages together for a whole project and records every change
// for the audit log:
//
//	result, err := webprune.Run(webprune.Config{Root: "."})
//
// # CLI Tool
//
// webprune also provides a CLI tool. Install with:
//
//	go install github.com/webprune/webprune/cmd/webprune@latest
package webprune

// Public API surface:
// - ScanProject(root, includes, excludes) (*Project, error)
// - ExtractCSSSelectors / ExtractJSIdentifiers
// - FindCSSReferences / FindJSReferences
// - RemoveUnusedCSSRules / RemoveUnusedJSCode
// - Run(config Config) (*Result, error)
