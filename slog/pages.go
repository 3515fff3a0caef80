// Package slog provides logging decorators for pagemeta services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingPageSource implements pagemeta.PageSource.
var _ pagemeta.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   pagemeta.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next pagemeta.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// ListPages delegates to the wrapped source and logs the page count.
func (s *LoggingPageSource) ListPages(ctx context.Context) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list pages",
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListPages(ctx)
}

// OpenPage delegates to the wrapped source and logs failures.
func (s *LoggingPageSource) OpenPage(ctx context.Context, path string) (rc io.ReadCloser, err error) {
	rc, err = s.next.OpenPage(ctx, path)
	if err != nil {
		s.logger.Error("open page", "path", path, "err", err)
	}
	return rc, err
}
