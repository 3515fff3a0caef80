package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// firstElement parses fragment and returns the first element with tag a.
func firstElement(t *testing.T, fragment string, a atom.Atom) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(fragment))
	require.NoError(t, err)

	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	require.NotNil(t, found, "no %s element in fragment", a)
	return found
}

func TestMatchDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		html   string
		want   pagemeta.Marker
		wantOK bool
	}{
		{
			name:   "matches debug item",
			html:   `<div class="debug-data-item" data-name="node_id" data-value="12345"></div>`,
			want:   pagemeta.Marker{Field: pagemeta.FieldNodeID, Value: "12345"},
			wantOK: true,
		},
		{
			name:   "matches marker class among others",
			html:   `<div class="hidden debug-data-item x" data-name="template" data-value="page.tpl.php"></div>`,
			want:   pagemeta.Marker{Field: pagemeta.FieldTemplate, Value: "page.tpl.php"},
			wantOK: true,
		},
		{
			name:   "matches empty value",
			html:   `<div class="debug-data-item" data-name="uri" data-value=""></div>`,
			want:   pagemeta.Marker{Field: pagemeta.FieldURI, Value: ""},
			wantOK: true,
		},
		{
			name:   "matches uppercase tag and attributes",
			html:   `<DIV CLASS="debug-data-item" DATA-NAME="uri" DATA-VALUE="/a"></DIV>`,
			want:   pagemeta.Marker{Field: pagemeta.FieldURI, Value: "/a"},
			wantOK: true,
		},
		{
			name: "rejects missing marker class",
			html: `<div class="debug-data" data-name="node_id" data-value="1"></div>`,
		},
		{
			name: "rejects missing class attribute",
			html: `<div data-name="node_id" data-value="1"></div>`,
		},
		{
			name: "rejects missing data-value",
			html: `<div class="debug-data-item" data-name="node_id"></div>`,
		},
		{
			name: "rejects unknown field name",
			html: `<div class="debug-data-item" data-name="node_type" data-value="x"></div>`,
		},
		{
			name: "rejects container div",
			html: `<div class="" style="display: none;"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := firstElement(t, tt.html, atom.Div)

			got, ok := goquery.MatchDiv(n)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects other elements", func(t *testing.T) {
		t.Parallel()

		n := firstElement(t, `<span class="debug-data-item" data-name="uri" data-value="/a"></span>`, atom.Span)

		_, ok := goquery.MatchDiv(n)

		assert.False(t, ok)
	})

	t.Run("rejects nil", func(t *testing.T) {
		t.Parallel()

		_, ok := goquery.MatchDiv(nil)

		assert.False(t, ok)
	})
}

func TestMatchMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		html   string
		want   pagemeta.Marker
		wantOK bool
	}{
		{
			name:   "matches field meta tag",
			html:   `<meta name="content_type" content="article">`,
			want:   pagemeta.Marker{Field: pagemeta.FieldContentType, Value: "article"},
			wantOK: true,
		},
		{
			name:   "keeps comma in value",
			html:   `<meta name="node_url" content="http://example.org/a,b">`,
			want:   pagemeta.Marker{Field: pagemeta.FieldNodeURL, Value: "http://example.org/a,b"},
			wantOK: true,
		},
		{
			name: "rejects unrelated meta tag",
			html: `<meta name="viewport" content="width=device-width">`,
		},
		{
			name: "rejects meta without content",
			html: `<meta name="uri">`,
		},
		{
			name: "rejects charset meta",
			html: `<meta charset="utf-8">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := firstElement(t, tt.html, atom.Meta)

			got, ok := goquery.MatchMeta(n)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
