package visibility

// Region is a span of document rows.
type Region struct {
	Top    int
	Height int
}

// Viewport is the span of document rows currently on screen.
type Viewport struct {
	Top    int
	Height int
}

// Sample is one intersection measurement.
type Sample struct {
	Ratio        float64
	Intersecting bool
}

// Measure returns the fraction of r that lies inside v. A zero-height
// region counts as fully visible when its top row is on screen.
func (v Viewport) Measure(r Region) Sample {
	if v.Height <= 0 {
		return Sample{}
	}
	vEnd := v.Top + v.Height
	if r.Height <= 0 {
		if r.Top >= v.Top && r.Top < vEnd {
			return Sample{Ratio: 1, Intersecting: true}
		}
		return Sample{}
	}
	top := max(r.Top, v.Top)
	end := min(r.Top+r.Height, vEnd)
	if end <= top {
		return Sample{}
	}
	return Sample{
		Ratio:        float64(end-top) / float64(r.Height),
		Intersecting: true,
	}
}

// Callback receives the observation being sampled so it can release it.
type Callback func(obs *Observation, s Sample)

// Observation is a live subscription to one region's samples.
type Observation struct {
	observer *Observer
	id       uint64
	region   Region
	fn       Callback
	released bool
}

// Observer delivers intersection samples for observed regions. Like the
// rest of the UI it is driven from a single goroutine.
type Observer struct {
	viewport Viewport
	nextID   uint64
	live     []*Observation
}

func NewObserver(v Viewport) *Observer {
	return &Observer{viewport: v}
}

func (o *Observer) Viewport() Viewport { return o.viewport }

// Observe starts watching r and immediately delivers an initial sample.
func (o *Observer) Observe(r Region, fn Callback) *Observation {
	o.nextID++
	obs := &Observation{observer: o, id: o.nextID, region: r, fn: fn}
	o.live = append(o.live, obs)
	obs.deliver()
	return obs
}

// SetViewport moves the viewport and re-samples every live observation.
func (o *Observer) SetViewport(v Viewport) {
	if v == o.viewport {
		return
	}
	o.viewport = v
	for _, obs := range append([]*Observation(nil), o.live...) {
		obs.deliver()
	}
}

// Live returns the number of observations not yet released.
func (o *Observer) Live() int { return len(o.live) }

func (obs *Observation) deliver() {
	if obs.released {
		return
	}
	obs.fn(obs, obs.observer.viewport.Measure(obs.region))
}

// Region returns the observed geometry.
func (obs *Observation) Region() Region { return obs.region }

// Active reports whether the observation has not been released.
func (obs *Observation) Active() bool { return !obs.released }

// Move updates the observed geometry and re-samples it.
func (obs *Observation) Move(r Region) {
	if obs.released || obs.region == r {
		return
	}
	obs.region = r
	obs.deliver()
}

// Release stops the observation. It is safe to call more than once and
// from inside the observation's own callback.
func (obs *Observation) Release() {
	if obs.released {
		return
	}
	obs.released = true
	live := obs.observer.live
	for i, other := range live {
		if other == obs {
			obs.observer.live = append(live[:i], live[i+1:]...)
			break
		}
	}
}
