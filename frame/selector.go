package frame

import (
	"sync/atomic"

	"craftwire/geom"
)

// Selector holds the active shape for a session. Front ends replace it on
// user choice and read it once per frame.
type Selector struct {
	active atomic.Pointer[geom.Shape]
}

// NewSelector starts a session with the named shape active.
func NewSelector(name string) (*Selector, error) {
	s := new(Selector)
	if err := s.Select(name); err != nil {
		return nil, err
	}
	return s, nil
}

// Select makes the named catalog shape active. On error the previous
// shape stays active.
func (s *Selector) Select(name string) error {
	shape, err := geom.Lookup(name)
	if err != nil {
		return err
	}
	s.active.Store(shape)
	return nil
}

// Next activates the catalog shape after the current one and returns its
// name. Concurrent calls each advance the selection by one.
func (s *Selector) Next() string {
	names := geom.Names()
	for {
		cur := s.Active()
		next := names[0]
		if cur != nil {
			for i, n := range names {
				if n == cur.Name() {
					next = names[(i+1)%len(names)]
				}
			}
		}
		shape, err := geom.Lookup(next)
		if err != nil {
			panic(err) // catalog names always resolve
		}
		if s.active.CompareAndSwap(cur, shape) {
			return next
		}
	}
}

// Active returns the current shape.
func (s *Selector) Active() *geom.Shape { return s.active.Load() }

// Frame assembles a frame of whichever shape is active when it is called.
func (s *Selector) Frame(p Params, cfg Config) (Frame, error) {
	return Assemble(s.Active(), p, cfg)
}
