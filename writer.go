package pagemeta

import "context"

// RecordWriter persists page records as they are produced.
type RecordWriter interface {
	// Reset discards output left by a previous run.
	Reset(ctx context.Context) error

	// WriteRecord appends a single record.
	// Returns EOUTPUTMISSING if the output directory does not exist.
	WriteRecord(ctx context.Context, record *PageRecord) error
}
