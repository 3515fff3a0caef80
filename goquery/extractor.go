package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Ensure Extractor implements pagemeta.MarkerExtractor at compile time.
var _ pagemeta.MarkerExtractor = (*Extractor)(nil)

// Extractor implements pagemeta.MarkerExtractor for one marker convention.
type Extractor struct {
	convention pagemeta.Convention
	detector   *Detector
}

// NewExtractor creates an Extractor for the given convention.
// An empty convention selects pagemeta.DefaultConvention.
func NewExtractor(convention pagemeta.Convention) *Extractor {
	if convention == "" {
		convention = pagemeta.DefaultConvention
	}
	return &Extractor{
		convention: convention,
		detector:   NewDetector(),
	}
}

// Extract parses r and returns its markers in document order.
func (e *Extractor) Extract(r io.Reader) ([]pagemeta.Marker, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINTERNAL, "failed to parse HTML: %v", err)
	}

	convention := e.convention
	if convention == pagemeta.ConventionAuto {
		detected, ok := e.detector.Detect(doc)
		if !ok {
			return nil, nil
		}
		convention = detected
	}

	switch convention {
	case pagemeta.ConventionDiv:
		return collect(doc, "div", MatchDiv), nil
	case pagemeta.ConventionMeta:
		return collect(doc, "meta", MatchMeta), nil
	}
	return nil, pagemeta.Errorf(pagemeta.EINVALID, "unknown marker convention %q", convention)
}

// collect applies match to every element selected by selector.
func collect(doc *goquery.Document, selector string, match MatchFunc) []pagemeta.Marker {
	var markers []pagemeta.Marker
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if m, ok := match(sel.Get(0)); ok {
			markers = append(markers, m)
		}
	})
	return markers
}
