package metrics

import (
	"testing"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

func tick(positions []race.Position, events []race.Event) race.TickResult {
	return race.TickResult{Positions: positions, Events: events}
}

func TestLeadMargin(t *testing.T) {
	m := NewLeadMargin()

	m.Observe(tick([]race.Position{{ID: 0, Distance: 100}, {ID: 1, Distance: 90}}, nil))
	m.Observe(tick([]race.Position{{ID: 0, Distance: 200}, {ID: 1, Distance: 175}}, nil))
	m.Observe(tick([]race.Position{{ID: 0, Distance: 300}, {ID: 1, Distance: 290}}, nil))

	if m.Value() != 25 {
		t.Errorf("lead margin = %v, want 25", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the margin")
	}
}

func TestLeadMarginSingle(t *testing.T) {
	m := NewLeadMargin()
	m.Observe(tick([]race.Position{{ID: 0, Distance: 100}}, nil))
	if m.Value() != 0 {
		t.Error("a lone competitor has no margin")
	}
}

func TestPackSpread(t *testing.T) {
	m := NewPackSpread()

	m.Observe(tick([]race.Position{
		{ID: 0, Distance: 100},
		{ID: 1, Distance: 80},
		{ID: 2, Distance: 500, Finished: true},
	}, nil))
	m.Observe(tick([]race.Position{
		{ID: 0, Distance: 150},
		{ID: 1, Distance: 110},
	}, nil))

	if m.Value() != 30 {
		t.Errorf("pack spread = %v, want 30", m.Value())
	}
}

func TestEventCount(t *testing.T) {
	m := NewIncidentCount()
	if m.Name() != "incidents" {
		t.Errorf("name = %q", m.Name())
	}

	m.Observe(tick(nil, []race.Event{
		{Kind: race.EventIncident},
		{Kind: race.EventOvertake},
		{Kind: race.EventIncident},
	}))
	m.Observe(tick(nil, []race.Event{{Kind: race.EventFinish}}))

	if m.Value() != 2 {
		t.Errorf("incident count = %v, want 2", m.Value())
	}
}

func TestAvgFinishTime(t *testing.T) {
	m := NewAvgFinishTime()
	if m.Value() != 0 {
		t.Error("no finishes yet, want 0")
	}

	m.Observe(tick(nil, []race.Event{{Kind: race.EventFinish, Time: 60}}))
	m.Observe(tick(nil, []race.Event{
		{Kind: race.EventOvertake, Time: 61},
		{Kind: race.EventFinish, Time: 70},
	}))

	if m.Value() != 65 {
		t.Errorf("avg finish time = %v, want 65", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the average")
	}
}
