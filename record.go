package pagemeta

import "fmt"

// Field names a debug marker recognized in downloaded pages.
type Field string

// Field constants in CSV column order.
const (
	FieldNodeID      Field = "node_id"
	FieldNodeURL     Field = "node_url"
	FieldContentType Field = "content_type"
	FieldTemplate    Field = "template"
	FieldURI         Field = "uri"
	FieldAbsoluteURI Field = "absolute_uri"
)

// Sentinel content types.
const (
	// NoDebugData replaces an empty content type when a page carried no
	// content_type marker.
	NoDebugData = "NO_DEBUG_DATA"

	// Unknown is a content type reported by the tagging step itself.
	// Pages carrying it are highlighted in the summary.
	Unknown = "UNKNOWN"
)

var fields = []Field{
	FieldNodeID,
	FieldNodeURL,
	FieldContentType,
	FieldTemplate,
	FieldURI,
	FieldAbsoluteURI,
}

// ParseField returns the Field with the given name.
// Matching is exact; the second return value is false for unknown names.
func ParseField(name string) (Field, bool) {
	for _, f := range fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Marker is a single field/value pair recovered from a page.
type Marker struct {
	Field Field
	Value string
}

// PageRecord holds the debug data gathered from one downloaded page.
type PageRecord struct {
	// File identifies the source page. It is used for diagnostics only
	// and never written to CSV.
	File string

	NodeID      string
	NodeURL     string
	ContentType string
	Template    string
	URI         string
	AbsoluteURI string

	// ContentHash is the xxhash of the raw page bytes. Diagnostic only.
	ContentHash string
}

// NewRecord builds a record for file from markers applied in document
// order, so a later marker for the same field replaces an earlier one.
// An empty content type is replaced with NoDebugData; the second return
// value reports whether that happened.
func NewRecord(file string, markers []Marker) (*PageRecord, bool) {
	r := &PageRecord{File: file}
	for _, m := range markers {
		r.Set(m.Field, m.Value)
	}
	if r.ContentType == "" {
		r.ContentType = NoDebugData
		return r, true
	}
	return r, false
}

// Set assigns value to the slot for field. Unknown fields are ignored.
func (r *PageRecord) Set(field Field, value string) {
	switch field {
	case FieldNodeID:
		r.NodeID = value
	case FieldNodeURL:
		r.NodeURL = value
	case FieldContentType:
		r.ContentType = value
	case FieldTemplate:
		r.Template = value
	case FieldURI:
		r.URI = value
	case FieldAbsoluteURI:
		r.AbsoluteURI = value
	}
}

// Get returns the value of the slot for field, or "" for unknown fields.
func (r *PageRecord) Get(field Field) string {
	switch field {
	case FieldNodeID:
		return r.NodeID
	case FieldNodeURL:
		return r.NodeURL
	case FieldContentType:
		return r.ContentType
	case FieldTemplate:
		return r.Template
	case FieldURI:
		return r.URI
	case FieldAbsoluteURI:
		return r.AbsoluteURI
	}
	return ""
}

// Row returns the record's values in CSV column order.
func (r *PageRecord) Row() []string {
	row := make([]string, len(fields))
	for i, f := range fields {
		row[i] = r.Get(f)
	}
	return row
}

// String formats the record for diagnostic output.
func (r *PageRecord) String() string {
	s := fmt.Sprintf("{file: %q, node_id: %q, node_url: %q, content_type: %q, template: %q, uri: %q, absolute_uri: %q",
		r.File, r.NodeID, r.NodeURL, r.ContentType, r.Template, r.URI, r.AbsoluteURI)
	if r.ContentHash != "" {
		s += fmt.Sprintf(", hash: %s", r.ContentHash)
	}
	return s + "}"
}
