package export

import "sync"

// Guard tracks which export kinds are in flight. A second export of a
// kind is refused until the first releases; different kinds may overlap.
type Guard struct {
	mu       sync.Mutex
	inFlight map[Kind]bool
}

// NewGuard returns an idle guard.
func NewGuard() *Guard {
	return &Guard{inFlight: make(map[Kind]bool)}
}

// TryAcquire marks kind as in flight. It returns false if it already was.
// The returned release func must be called exactly once; extra calls are no-ops.
func (g *Guard) TryAcquire(kind Kind) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[kind] {
		return func() {}, false
	}
	g.inFlight[kind] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, kind)
			g.mu.Unlock()
		})
	}, true
}

// InFlight reports whether an export of kind is running.
func (g *Guard) InFlight(kind Kind) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inFlight[kind]
}
