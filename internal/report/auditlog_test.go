package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webprune/webprune"
)

func TestWriteAuditLog(t *testing.T) {
	ts := time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC)
	records := []webprune.ChangeRecord{
		{
			File:         "styles.css",
			Type:         webprune.FileTypeCSS,
			Removed:      []string{".ghost", "#stale"},
			OriginalSize: 100,
			NewSize:      80,
			Timestamp:    ts,
		},
		{
			File:         "app.js",
			Type:         webprune.FileTypeJS,
			Removed:      []string{"unused"},
			OriginalSize: 50,
			NewSize:      30,
			Timestamp:    ts,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAuditLog(&buf, records, ts))
	out := buf.String()

	assert.Contains(t, out, "UNUSED CODE REMOVAL LOG")
	assert.Contains(t, out, "Generated: 2026-06-01 10:30:00")

	assert.Contains(t, out, "File: styles.css")
	assert.Contains(t, out, "Type: CSS")
	assert.Contains(t, out, "Original size: 100 bytes")
	assert.Contains(t, out, "New size: 80 bytes")
	assert.Contains(t, out, "Bytes saved: 20")
	assert.Contains(t, out, "  - .ghost")
	assert.Contains(t, out, "  - #stale")

	assert.Contains(t, out, "File: app.js")
	assert.Contains(t, out, "Type: JavaScript")

	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "Total files processed: 2")
	assert.Contains(t, out, "Total bytes saved: 40")
}

func TestWriteAuditLogNoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAuditLog(&buf, nil, time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC)))
	out := buf.String()

	assert.Contains(t, out, "UNUSED CODE REMOVAL LOG")
	assert.Contains(t, out, "Total files processed: 0")
	assert.Contains(t, out, "Total bytes saved: 0")
}
