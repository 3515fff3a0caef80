package mock

import (
	"context"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of pagemeta.RecordWriter.
type RecordWriter struct {
	ResetFn       func(ctx context.Context) error
	WriteRecordFn func(ctx context.Context, record *pagemeta.PageRecord) error
}

func (w *RecordWriter) Reset(ctx context.Context) error {
	return w.ResetFn(ctx)
}

func (w *RecordWriter) WriteRecord(ctx context.Context, record *pagemeta.PageRecord) error {
	return w.WriteRecordFn(ctx, record)
}
