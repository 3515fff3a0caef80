package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingRecordWriter implements pagemeta.RecordWriter.
var _ pagemeta.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with debug logging.
type LoggingRecordWriter struct {
	next   pagemeta.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next pagemeta.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// Reset delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) Reset(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("reset output",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Reset(ctx)
}

// WriteRecord delegates to the wrapped writer and logs the record.
func (w *LoggingRecordWriter) WriteRecord(ctx context.Context, record *pagemeta.PageRecord) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write record",
			"file", record.File,
			"node_id", record.NodeID,
			"content_type", record.ContentType,
			"hash", record.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecord(ctx, record)
}
