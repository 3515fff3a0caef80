// Package pagemeta extracts debug metadata from locally mirrored HTML pages.
// Pages downloaded with wget have had hidden debug markers injected into
// them (node ID, URLs, content type, template). pagemeta recovers those
// markers, writes one CSV row per page and summarizes pages by content type.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, bloom/).
package pagemeta
