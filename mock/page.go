package mock

import (
	"context"
	"io"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of pagemeta.PageSource.
type PageSource struct {
	ListPagesFn func(ctx context.Context) ([]string, error)
	OpenPageFn  func(ctx context.Context, path string) (io.ReadCloser, error)
}

func (s *PageSource) ListPages(ctx context.Context) ([]string, error) {
	return s.ListPagesFn(ctx)
}

func (s *PageSource) OpenPage(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.OpenPageFn(ctx, path)
}
