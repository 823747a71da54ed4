package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/webprune/webprune"
)

// Options controls reporter behavior.
type Options struct {
	UseColors bool // force colors on; otherwise auto-detected
	Verbose   bool // list every removed item per file
	DryRun    bool // annotate output: nothing was written
}

// Reporter formats run results for the terminal.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
	dryRun    bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:         w,
		useColors: opts.UseColors || shouldUseColors(),
		verbose:   opts.Verbose,
		dryRun:    opts.DryRun,
	}
}

// shouldUseColors auto-detects color support from the environment.
func shouldUseColors() bool {
	// FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintScanStats prints the one-line file discovery summary.
func (r *Reporter) PrintScanStats(p *webprune.Project) {
	fmt.Fprintf(r.w, "Found %d CSS, %d JS, %d HTML files",
		len(p.CSSFiles), len(p.JSFiles), len(p.HTMLFiles))
	if p.Stats.FilesSkipped > 0 {
		fmt.Fprintf(r.w, " %s",
			RenderStyle(StyleGray, fmt.Sprintf("(skipped %d ignored/minified)", p.Stats.FilesSkipped), r.useColors))
	}
	fmt.Fprintln(r.w)
}

// PrintChanges prints one line per rewritten file, with the removed items
// listed in verbose mode.
func (r *Reporter) PrintChanges(records []webprune.ChangeRecord) {
	for _, rec := range records {
		location := fmt.Sprintf("%s:", rec.File)
		fmt.Fprintf(r.w, "%s removed %s, saved %d bytes\n",
			RenderStyle(StyleCyan, location, r.useColors),
			pluralizeCount(len(rec.Removed), "item", "items"),
			rec.BytesSaved())

		if r.verbose {
			for _, item := range rec.Removed {
				fmt.Fprintf(r.w, "\t- %s\n", item)
			}
		}
	}
}

// PrintWarnings prints non-fatal per-file warnings.
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	for _, warning := range warnings {
		fmt.Fprintf(r.w, "  %s\n", warning)
	}
}

// PrintSummary prints the run totals.
func (r *Reporter) PrintSummary(result *webprune.Result) {
	fmt.Fprintln(r.w, "")

	if result.FilesChanged() == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "No unused code found.", r.useColors))
		return
	}

	verb := "changed"
	if r.dryRun {
		verb = "would change"
	}
	summary := fmt.Sprintf("%s %s, %d bytes saved",
		verb,
		pluralizeCount(result.FilesChanged(), "file", "files"),
		result.BytesSaved())
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, strings.ToUpper(summary[:1])+summary[1:], r.useColors))

	if r.dryRun {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Dry run: no files were written.", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
