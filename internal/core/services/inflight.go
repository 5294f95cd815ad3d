package services

import "sync"

// inflight is the per-record dispatch guard: at most one approval
// action runs for a given record ID at a time.
type inflight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{active: make(map[string]struct{})}
}

// begin reserves the record; it returns false when an action for the
// same record is already running.
func (g *inflight) begin(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[id]; busy {
		return false
	}
	g.active[id] = struct{}{}
	return true
}

func (g *inflight) end(id string) {
	g.mu.Lock()
	delete(g.active, id)
	g.mu.Unlock()
}
