// Package scan turns a directory of downloaded pages into CSV rows.
package scan

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemeta"
)

// Scanner processes downloaded pages one at a time: each page is parsed,
// its markers are turned into a record and the record is written before
// the next page is read.
type Scanner struct {
	Pages     pagemeta.PageSource
	Extractor pagemeta.MarkerExtractor
	Records   pagemeta.RecordWriter

	// NewNodeTracker returns a tracker sized for the given number of pages.
	// Duplicate node detection is skipped when nil.
	NewNodeTracker func(pages int) pagemeta.NodeTracker

	// Stdout receives progress lines and warnings. Discarded when nil.
	Stdout io.Writer
}

// Result holds the records produced by a run.
type Result struct {
	// Records are retained in processing order.
	Records []*pagemeta.PageRecord

	// PossibleDuplicates lists records whose node ID was probably
	// already seen on an earlier page.
	PossibleDuplicates []*pagemeta.PageRecord
}

// Summary summarizes the retained records.
func (r *Result) Summary() *pagemeta.Summary {
	s := pagemeta.Summarize(r.Records)
	s.PossibleDuplicates = len(r.PossibleDuplicates)
	return s
}

// Run removes previous output, then processes every page. On error the
// result holds the records written so far.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	out := s.Stdout
	if out == nil {
		out = io.Discard
	}

	if err := s.Records.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset output: %w", err)
	}

	paths, err := s.Pages.ListPages(ctx)
	if err != nil {
		return nil, err
	}

	var nodes pagemeta.NodeTracker
	if s.NewNodeTracker != nil {
		nodes = s.NewNodeTracker(len(paths))
	}

	result := &Result{Records: make([]*pagemeta.PageRecord, 0, len(paths))}
	for _, path := range paths {
		fmt.Fprintf(out, "Processing: %s\n", path)

		record, defaulted, err := s.processPage(ctx, path)
		if err != nil {
			return result, err
		}

		if defaulted {
			fmt.Fprintf(out, "Page %q missing debug data\n", path)
			fmt.Fprintln(out, record)
		}

		duplicate := nodes != nil && record.NodeID != "" && nodes.Seen(record.NodeID)
		if duplicate {
			fmt.Fprintf(out, "Possible duplicate node %q: %s\n", record.NodeID, path)
		}

		if err := s.Records.WriteRecord(ctx, record); err != nil {
			return result, err
		}
		result.Records = append(result.Records, record)
		if duplicate {
			result.PossibleDuplicates = append(result.PossibleDuplicates, record)
		}
	}

	return result, nil
}

// processPage reads one page and builds its record.
func (s *Scanner) processPage(ctx context.Context, path string) (*pagemeta.PageRecord, bool, error) {
	rc, err := s.Pages.OpenPage(ctx, path)
	if err != nil {
		return nil, false, pagemeta.Errorf(pagemeta.EINTERNAL, "failed to open page %q: %v", path, err)
	}
	content, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, false, pagemeta.Errorf(pagemeta.EINTERNAL, "failed to read page %q: %v", path, err)
	}

	markers, err := s.Extractor.Extract(bytes.NewReader(content))
	if err != nil {
		return nil, false, fmt.Errorf("page %q: %w", path, err)
	}

	record, defaulted := pagemeta.NewRecord(path, markers)
	record.ContentHash = ComputeHash(content)
	return record, defaulted, nil
}

// ComputeHash computes a hash of page content using xxhash.
func ComputeHash(content []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(content))
}
