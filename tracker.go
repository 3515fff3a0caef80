package pagemeta

// NodeTracker remembers node IDs seen during a run.
type NodeTracker interface {
	// Seen records id and reports whether it was seen before.
	// Implementations may report false positives.
	Seen(id string) bool
}
