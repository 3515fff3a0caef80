package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingMarkerExtractor implements pagemeta.MarkerExtractor.
var _ pagemeta.MarkerExtractor = (*LoggingMarkerExtractor)(nil)

// LoggingMarkerExtractor wraps a MarkerExtractor with debug logging.
type LoggingMarkerExtractor struct {
	next   pagemeta.MarkerExtractor
	logger *slog.Logger
}

// NewLoggingMarkerExtractor creates a new LoggingMarkerExtractor.
func NewLoggingMarkerExtractor(next pagemeta.MarkerExtractor, logger *slog.Logger) *LoggingMarkerExtractor {
	return &LoggingMarkerExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the marker count.
func (e *LoggingMarkerExtractor) Extract(r io.Reader) (markers []pagemeta.Marker, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract markers",
			"count", len(markers),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(r)
}
