// Package goquery recovers debug markers from HTML pages using goquery and
// the golang.org/x/net/html parser, which tolerates malformed markup.
package goquery

import (
	"slices"
	"strings"

	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkerClass is the class token carried by div markers.
const MarkerClass = "debug-data-item"

// MatchFunc reports whether n is a marker and, if so, which one.
type MatchFunc func(n *html.Node) (pagemeta.Marker, bool)

// MatchDiv matches a div marker:
//
//	<div class="debug-data-item" data-name="node_id" data-value="12345"></div>
//
// The element must carry class, data-name and data-value attributes, its
// class list must contain MarkerClass and data-name must be a known field.
func MatchDiv(n *html.Node) (pagemeta.Marker, bool) {
	if n == nil || n.Type != html.ElementNode || n.DataAtom != atom.Div {
		return pagemeta.Marker{}, false
	}

	class, ok := attr(n, "class")
	if !ok {
		return pagemeta.Marker{}, false
	}
	name, ok := attr(n, "data-name")
	if !ok {
		return pagemeta.Marker{}, false
	}
	value, ok := attr(n, "data-value")
	if !ok {
		return pagemeta.Marker{}, false
	}

	if !slices.Contains(strings.Fields(class), MarkerClass) {
		return pagemeta.Marker{}, false
	}
	field, ok := pagemeta.ParseField(name)
	if !ok {
		return pagemeta.Marker{}, false
	}
	return pagemeta.Marker{Field: field, Value: value}, true
}

// MatchMeta matches a meta tag marker:
//
//	<meta name="node_id" content="12345">
func MatchMeta(n *html.Node) (pagemeta.Marker, bool) {
	if n == nil || n.Type != html.ElementNode || n.DataAtom != atom.Meta {
		return pagemeta.Marker{}, false
	}

	name, ok := attr(n, "name")
	if !ok {
		return pagemeta.Marker{}, false
	}
	content, ok := attr(n, "content")
	if !ok {
		return pagemeta.Marker{}, false
	}

	field, ok := pagemeta.ParseField(name)
	if !ok {
		return pagemeta.Marker{}, false
	}
	return pagemeta.Marker{Field: field, Value: content}, true
}

// attr returns the value of the attribute named key.
// The HTML parser lowercases attribute names.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
