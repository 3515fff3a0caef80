package mock

import (
	"io"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.MarkerExtractor = (*MarkerExtractor)(nil)

// MarkerExtractor is a mock implementation of pagemeta.MarkerExtractor.
type MarkerExtractor struct {
	ExtractFn func(r io.Reader) ([]pagemeta.Marker, error)
}

func (e *MarkerExtractor) Extract(r io.Reader) ([]pagemeta.Marker, error) {
	return e.ExtractFn(r)
}
