package section

import (
	"time"

	"github.com/san-kum/chatflow/internal/timing"
	"github.com/san-kum/chatflow/internal/visibility"
)

// Set holds one independent binder per section.
type Set struct {
	order   []ID
	binders map[ID]*Binder
}

func NewSet(obs *visibility.Observer, threshold float64, sched timing.Scheduler, settle time.Duration, ids ...ID) (*Set, error) {
	s := &Set{binders: make(map[ID]*Binder, len(ids))}
	for _, id := range ids {
		if _, dup := s.binders[id]; dup {
			continue
		}
		b, err := NewBinder(id, obs, threshold, sched, settle)
		if err != nil {
			return nil, err
		}
		s.order = append(s.order, id)
		s.binders[id] = b
	}
	return s, nil
}

// Get returns the binder for id, or nil.
func (s *Set) Get(id ID) *Binder { return s.binders[id] }

func (s *Set) IDs() []ID { return append([]ID(nil), s.order...) }

// OnChange registers fn on every binder.
func (s *Set) OnChange(fn func(ID)) {
	for _, b := range s.binders {
		b.OnChange(fn)
	}
}

// Revealed returns the sections that have been seen, in page order.
func (s *Set) Revealed() []ID {
	var out []ID
	for _, id := range s.order {
		if s.binders[id].Visible() {
			out = append(out, id)
		}
	}
	return out
}

// Release unbinds every section.
func (s *Set) Release() {
	for _, b := range s.binders {
		b.Release()
	}
}
