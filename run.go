package webprune

import (
	"fmt"
	"os"
	"strings"
)

// Run executes one full detection-and-removal pass over the project. It is
// fully sequential: the corpus snapshot is built before any file is written,
// so reference decisions for every file are based on pre-edit state. Per-file
// read and write failures become warnings and the run continues; only a
// missing root or an empty project aborts.
func Run(cfg Config) (*Result, error) {
	project, err := ScanProject(cfg.Root, cfg.Includes, cfg.Excludes)
	if err != nil {
		return nil, err
	}

	if len(project.CSSFiles) == 0 && len(project.JSFiles) == 0 {
		return nil, ErrNoFiles
	}

	corpus, jsContents, warnings := buildCorpus(project)

	result := &Result{
		Project:     project,
		Warnings:    warnings,
		NewContents: make(map[string]string),
	}
	recorder := NewRecorder()

	for _, file := range project.CSSFiles {
		content, err := ReadFileSafe(project.Abs(file))
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not read %s: %v", file, err))
			continue
		}
		if content == "" {
			continue
		}

		selectors := ExtractCSSSelectors(content)
		referenced := FindCSSReferences(corpus, selectors)
		unused := selectors.Diff(referenced)
		if len(unused) == 0 {
			continue
		}

		newContent := RemoveUnusedCSSRules(content, unused)
		recorder.Record(file, FileTypeCSS, unused.Strings(), len(content), len(newContent))
		result.NewContents[file] = newContent

		if cfg.Verify {
			for _, issue := range VerifyCSS(newContent) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", file, issue))
			}
		}

		if !cfg.DryRun {
			if err := writeFile(project.Abs(file), newContent); err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("could not write %s: %v", file, err))
			}
		}
	}

	for _, file := range project.JSFiles {
		content := jsContents[file]
		if content == "" {
			continue
		}

		idents := ExtractJSIdentifiers(content)
		referenced := FindJSReferences(corpus, idents)
		unused := idents.Diff(referenced)
		if len(unused) == 0 {
			continue
		}

		newContent := RemoveUnusedJSCode(content, unused)
		recorder.Record(file, FileTypeJS, unused.Names(), len(content), len(newContent))
		result.NewContents[file] = newContent

		if cfg.Verify {
			for _, issue := range VerifyJS(newContent) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", file, issue))
			}
		}

		if !cfg.DryRun {
			if err := writeFile(project.Abs(file), newContent); err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("could not write %s: %v", file, err))
			}
		}
	}

	result.Records = recorder.Records()
	return result, nil
}

// buildCorpus reads every HTML and JS file once and concatenates their text
// into the immutable reference corpus. JS contents are returned alongside so
// the per-file pass does not reread them after the snapshot is taken.
func buildCorpus(project *Project) (string, map[string]string, []string) {
	var corpus strings.Builder
	var warnings []string
	jsContents := make(map[string]string, len(project.JSFiles))

	for _, file := range project.HTMLFiles {
		content, err := ReadFileSafe(project.Abs(file))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not read %s: %v", file, err))
			continue
		}
		corpus.WriteString("\n")
		corpus.WriteString(content)
	}

	for _, file := range project.JSFiles {
		content, err := ReadFileSafe(project.Abs(file))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not read %s: %v", file, err))
			content = ""
		}
		jsContents[file] = content
		corpus.WriteString("\n")
		corpus.WriteString(content)
	}

	return corpus.String(), jsContents, warnings
}

// writeFile writes rewritten content back as UTF-8.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
