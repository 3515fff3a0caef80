package fs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagemeta"
)

// Ensure CSVWriter implements pagemeta.RecordWriter at compile time.
var _ pagemeta.RecordWriter = (*CSVWriter)(nil)

// CSVWriter appends page records to a CSV file, one row per record.
// Rows have no header and use LF line endings; fields are quoted only when
// they contain a comma, a quote or a line break.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a new CSVWriter for the file at path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Reset removes the CSV file left by a previous run. A missing file or
// directory is not an error.
func (w *CSVWriter) Reset(ctx context.Context) error {
	info, err := os.Stat(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	return os.Remove(w.path)
}

// WriteRecord appends record to the CSV file. The file is opened and closed
// on every call, so rows written before a failure stay on disk.
func (w *CSVWriter) WriteRecord(ctx context.Context, record *pagemeta.PageRecord) error {
	dir := filepath.Dir(w.path)
	if info, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return pagemeta.Errorf(pagemeta.EOUTPUTMISSING, "path to output CSV %q does not exist", dir)
	} else if err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", w.path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(record.Row()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write row: %w", err)
	}

	return f.Close()
}
