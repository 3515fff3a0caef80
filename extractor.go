package pagemeta

import "io"

// MarkerExtractor recovers debug markers from an HTML page.
type MarkerExtractor interface {
	// Extract parses r leniently and returns the recognized markers in
	// document order. Malformed HTML is not an error; it yields whatever
	// markers can still be found.
	Extract(r io.Reader) ([]Marker, error)
}
