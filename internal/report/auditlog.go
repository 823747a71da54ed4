package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/webprune/webprune"
)

// WriteAuditLog writes the plain-text change log: a header, one block per
// change record and a summary footer. The format is stable so the log can
// be diffed between runs.
func WriteAuditLog(w io.Writer, records []webprune.ChangeRecord, generatedAt time.Time) error {
	var b strings.Builder

	b.WriteString("UNUSED CODE REMOVAL LOG\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	totalBytesSaved := 0
	for _, rec := range records {
		fmt.Fprintf(&b, "File: %s\n", rec.File)
		fmt.Fprintf(&b, "Type: %s\n", rec.Type)
		fmt.Fprintf(&b, "Timestamp: %s\n", rec.Timestamp.Format(time.RFC3339))
		fmt.Fprintf(&b, "Original size: %d bytes\n", rec.OriginalSize)
		fmt.Fprintf(&b, "New size: %d bytes\n", rec.NewSize)
		fmt.Fprintf(&b, "Bytes saved: %d\n", rec.BytesSaved())
		b.WriteString("Removed items:\n")
		for _, item := range rec.Removed {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
		b.WriteString(strings.Repeat("-", 40) + "\n\n")
		totalBytesSaved += rec.BytesSaved()
	}

	b.WriteString("SUMMARY\n")
	fmt.Fprintf(&b, "Total files processed: %d\n", len(records))
	fmt.Fprintf(&b, "Total bytes saved: %d\n", totalBytesSaved)

	_, err := io.WriteString(w, b.String())
	return err
}
