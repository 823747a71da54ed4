package webprune

import (
	"time"
)

// Recorder accumulates one ChangeRecord per file that had removals. It does
// no I/O itself; the records are handed to the reporter and audit log writer
// after the run.
type Recorder struct {
	records []ChangeRecord
	now     func() time.Time
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Record appends a change record for one rewritten file. removed must
// already be sorted; sizes are byte lengths of the text before and after
// removal.
func (r *Recorder) Record(file string, fileType FileType, removed []string, originalSize, newSize int) {
	r.records = append(r.records, ChangeRecord{
		File:         file,
		Type:         fileType,
		Removed:      removed,
		OriginalSize: originalSize,
		NewSize:      newSize,
		Timestamp:    r.now(),
	})
}

// Records returns the accumulated records in the order they were created.
func (r *Recorder) Records() []ChangeRecord {
	return r.records
}

// FilesChanged returns the number of recorded files.
func (r *Recorder) FilesChanged() int {
	return len(r.records)
}

// BytesSaved returns the total size delta across all records.
func (r *Recorder) BytesSaved() int {
	total := 0
	for _, rec := range r.records {
		total += rec.BytesSaved()
	}
	return total
}
