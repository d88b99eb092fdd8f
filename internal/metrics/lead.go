package metrics

import (
	"math"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

// LeadMargin tracks the largest gap in meters between the leader and
// the runner-up over the whole race.
type LeadMargin struct {
	name      string
	maxMargin float64
}

func NewLeadMargin() *LeadMargin {
	return &LeadMargin{name: "lead_margin"}
}

func (m *LeadMargin) Name() string { return m.name }

func (m *LeadMargin) Observe(r race.TickResult) {
	if len(r.Positions) < 2 {
		return
	}
	margin := r.Positions[0].Distance - r.Positions[1].Distance
	m.maxMargin = math.Max(m.maxMargin, margin)
}

func (m *LeadMargin) Value() float64 { return m.maxMargin }

func (m *LeadMargin) Reset() { m.maxMargin = 0 }

// PackSpread averages the distance between the first and last
// competitor still in the running.
type PackSpread struct {
	name    string
	total   float64
	samples int
}

func NewPackSpread() *PackSpread {
	return &PackSpread{name: "pack_spread"}
}

func (m *PackSpread) Name() string { return m.name }

func (m *PackSpread) Observe(r race.TickResult) {
	first, last := math.Inf(-1), math.Inf(1)
	active := 0
	for _, pos := range r.Positions {
		if pos.Finished || pos.DNF {
			continue
		}
		active++
		first = math.Max(first, pos.Distance)
		last = math.Min(last, pos.Distance)
	}
	if active < 2 {
		return
	}
	m.total += first - last
	m.samples++
}

func (m *PackSpread) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *PackSpread) Reset() {
	m.total = 0
	m.samples = 0
}
