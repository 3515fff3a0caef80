// Package bloom provides node ID deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/pagemeta"
)

// Ensure Filter implements pagemeta.NodeTracker at compile time.
var _ pagemeta.NodeTracker = (*Filter)(nil)

// Filter wraps a Bloom filter for node ID deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen adds id to the filter and reports whether it might have been added
// before. False positives are possible; false negatives are not.
func (f *Filter) Seen(id string) bool {
	return f.f.TestAndAddString(id)
}
