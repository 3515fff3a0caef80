package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Detector identifies which marker convention a parsed page uses.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns ConventionDiv if the page has any div marker, otherwise
// ConventionMeta if it has any meta marker. The second return value is
// false when the page carries no markers at all.
func (d *Detector) Detect(doc *goquery.Document) (pagemeta.Convention, bool) {
	// Div markers take precedence; pages tagged with divs may still carry
	// unrelated meta tags named like our fields.
	if d.has(doc, "div", MatchDiv) {
		return pagemeta.ConventionDiv, true
	}
	if d.has(doc, "meta", MatchMeta) {
		return pagemeta.ConventionMeta, true
	}
	return "", false
}

func (d *Detector) has(doc *goquery.Document, selector string, match MatchFunc) bool {
	found := false
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if _, ok := match(sel.Get(0)); ok {
			found = true
			return false
		}
		return true
	})
	return found
}
