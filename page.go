package pagemeta

import (
	"context"
	"io"
)

// PageSource lists and opens downloaded pages.
type PageSource interface {
	// ListPages returns the paths of the pages to process, in processing order.
	// Returns EINPUTMISSING if the pages directory does not exist.
	ListPages(ctx context.Context) ([]string, error)

	// OpenPage opens a page returned by ListPages.
	OpenPage(ctx context.Context, path string) (io.ReadCloser, error)
}
