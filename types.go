package webprune

import (
	"sort"
	"time"
)

// SelectorKind distinguishes class selectors from ID selectors.
type SelectorKind string

// Selector kinds.
const (
	SelectorClass SelectorKind = "class"
	SelectorID    SelectorKind = "id"
)

// Selector is a CSS class or ID name extracted from stylesheet text.
// Two selectors are equal when kind and name match.
type Selector struct {
	Kind SelectorKind // class or id
	Name string       // "btn--primary", without the leading . or #
}

// String returns the selector in source form: ".name" or "#name".
func (s Selector) String() string {
	if s.Kind == SelectorID {
		return "#" + s.Name
	}
	return "." + s.Name
}

// SelectorSet is a set of selectors keyed by value.
type SelectorSet map[Selector]struct{}

// Add inserts a selector into the set.
func (s SelectorSet) Add(sel Selector) {
	s[sel] = struct{}{}
}

// Has reports whether the set contains sel.
func (s SelectorSet) Has(sel Selector) bool {
	_, ok := s[sel]
	return ok
}

// Diff returns the selectors present in s but absent from other.
func (s SelectorSet) Diff(other SelectorSet) SelectorSet {
	out := make(SelectorSet)
	for sel := range s {
		if !other.Has(sel) {
			out.Add(sel)
		}
	}
	return out
}

// Strings returns the selectors in source form, sorted for determinism.
func (s SelectorSet) Strings() []string {
	out := make([]string, 0, len(s))
	for sel := range s {
		out = append(out, sel.String())
	}
	sort.Strings(out)
	return out
}

// DeclForm records how a JS identifier was declared. It is informational
// only: reference matching goes by name.
type DeclForm string

// Declaration forms.
const (
	DeclFunction DeclForm = "function"
	DeclVariable DeclForm = "variable"
)

// Identifier is a JavaScript function or variable name extracted from
// script text.
type Identifier struct {
	Name string
	Form DeclForm
}

// IdentifierSet is a set of identifiers keyed by name. When the same name
// is declared more than once the first form seen wins.
type IdentifierSet map[string]Identifier

// Add inserts an identifier unless its name is already present.
func (s IdentifierSet) Add(id Identifier) {
	if _, ok := s[id.Name]; !ok {
		s[id.Name] = id
	}
}

// Has reports whether the set contains an identifier with the given name.
func (s IdentifierSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Diff returns the identifiers present in s but absent from other.
func (s IdentifierSet) Diff(other IdentifierSet) IdentifierSet {
	out := make(IdentifierSet)
	for name, id := range s {
		if !other.Has(name) {
			out[name] = id
		}
	}
	return out
}

// Names returns the identifier names, sorted for determinism.
func (s IdentifierSet) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FileType labels the kind of file a change record refers to.
type FileType string

// File types as they appear in the audit log.
const (
	FileTypeCSS FileType = "CSS"
	FileTypeJS  FileType = "JavaScript"
)

// ChangeRecord is an audit entry describing what was removed from one file.
// It is immutable after creation.
type ChangeRecord struct {
	File         string    `json:"file"`
	Type         FileType  `json:"type"`
	Removed      []string  `json:"removed_items"` // sorted, source form for selectors
	OriginalSize int       `json:"original_size"` // bytes before removal
	NewSize      int       `json:"new_size"`      // bytes after removal
	Timestamp    time.Time `json:"timestamp"`
}

// BytesSaved returns the size delta for this record.
func (r ChangeRecord) BytesSaved() int {
	return r.OriginalSize - r.NewSize
}

// ScanStats tracks file discovery statistics for one project scan.
type ScanStats struct {
	FilesDiscovered int // files matched by the include patterns
	FilesScanned    int // files kept after filtering
	FilesSkipped    int // files dropped by gitignore/minified/exclude filters
}

// Config holds the settings for one removal run.
type Config struct {
	Root     string   // project root to scan
	Includes []string // glob patterns relative to Root; defaults cover css/js/html
	Excludes []string // glob patterns to skip, relative to Root
	DryRun   bool     // detect and record, but write nothing back
	Verify   bool     // lex rewritten output and warn about damage
	Verbose  bool
}

// Result aggregates everything one run produced.
type Result struct {
	Project  *Project
	Records  []ChangeRecord
	Warnings []string

	// Rewritten contents per file, kept for dry-run reporting. Populated
	// only for files that had removals.
	NewContents map[string]string
}

// FilesChanged returns the number of files with at least one removal.
func (r *Result) FilesChanged() int {
	return len(r.Records)
}

// BytesSaved returns the total size delta across all records.
func (r *Result) BytesSaved() int {
	total := 0
	for _, rec := range r.Records {
		total += rec.BytesSaved()
	}
	return total
}
