package mock

import "github.com/fwojciec/pagemeta"

var _ pagemeta.NodeTracker = (*NodeTracker)(nil)

// NodeTracker is a mock implementation of pagemeta.NodeTracker.
type NodeTracker struct {
	SeenFn func(id string) bool
}

func (t *NodeTracker) Seen(id string) bool {
	return t.SeenFn(id)
}
