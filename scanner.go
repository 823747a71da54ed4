package webprune

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Sentinel errors surfaced by ScanProject and Run.
var (
	// ErrRootNotFound means the project root does not exist; nothing was
	// scanned or touched.
	ErrRootNotFound = errors.New("project root not found")

	// ErrNoFiles means the scan found no CSS or JS files to process.
	ErrNoFiles = errors.New("no CSS or JavaScript files found")
)

// defaultIncludes covers the three file kinds the tool cares about.
var defaultIncludes = []string{
	"**/*.css",
	"**/*.js",
	"**/*.html",
	"**/*.htm",
}

// Project is the classified result of one directory scan. File lists are
// sorted and hold paths relative to Root.
type Project struct {
	Root      string
	CSSFiles  []string
	JSFiles   []string
	HTMLFiles []string
	Stats     ScanStats
}

// projectScanner carries per-scan filtering state.
type projectScanner struct {
	root      string
	excludes  []string
	gitIgnore *ignore.GitIgnore
}

// ScanProject walks root for CSS, JS and HTML files matching the include
// patterns, classifying them by extension. Gitignored files, minified
// bundles and files matching an exclude pattern are skipped.
func ScanProject(root string, includes, excludes []string) (*Project, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	if len(includes) == 0 {
		includes = defaultIncludes
	}

	s := &projectScanner{
		root:      root,
		excludes:  excludes,
		gitIgnore: loadGitIgnore(root),
	}

	project := &Project{Root: root}
	seen := make(map[string]bool)

	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil || seen[rel] {
				continue
			}

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[rel] = true
			project.Stats.FilesDiscovered++

			if s.shouldSkipFile(rel) {
				project.Stats.FilesSkipped++
				continue
			}

			switch strings.ToLower(filepath.Ext(rel)) {
			case ".css":
				project.CSSFiles = append(project.CSSFiles, rel)
			case ".js":
				project.JSFiles = append(project.JSFiles, rel)
			case ".html", ".htm":
				project.HTMLFiles = append(project.HTMLFiles, rel)
			default:
				// Matched by a user pattern but not a kind we process.
				project.Stats.FilesSkipped++
				continue
			}
			project.Stats.FilesScanned++
		}
	}

	sort.Strings(project.CSSFiles)
	sort.Strings(project.JSFiles)
	sort.Strings(project.HTMLFiles)

	return project, nil
}

// Abs returns the absolute path of a project-relative file.
func (p *Project) Abs(rel string) string {
	return filepath.Join(p.Root, rel)
}

// loadGitIgnore loads the project's .gitignore if present. A missing or
// unreadable .gitignore degrades gracefully to no filtering.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// isMinified checks for pre-built bundle suffixes that should never be
// rewritten.
func isMinified(path string) bool {
	return strings.HasSuffix(path, ".min.css") ||
		strings.HasSuffix(path, ".min.js")
}

// shouldSkipFile determines if a file should be excluded from processing.
//
// Three-layer filtering:
// 1. Suffix check (fast): skip minified bundles
// 2. Exclude patterns from configuration
// 3. Gitignore check for files inside the project
func (s *projectScanner) shouldSkipFile(rel string) bool {
	if isMinified(rel) {
		return true
	}

	relSlash := filepath.ToSlash(rel)
	for _, pattern := range s.excludes {
		if ok, err := doublestar.Match(pattern, relSlash); err == nil && ok {
			return true
		}
	}

	if s.gitIgnore != nil && s.gitIgnore.MatchesPath(rel) {
		return true
	}

	return false
}
