package metrics

import "github.com/WinandMe/UmaRacingProject-sub000/internal/race"

// EventCount counts how often one event kind occurred.
type EventCount struct {
	name  string
	kind  race.EventKind
	count int
}

func NewEventCount(name string, kind race.EventKind) *EventCount {
	return &EventCount{name: name, kind: kind}
}

func NewIncidentCount() *EventCount {
	return NewEventCount("incidents", race.EventIncident)
}

func NewOvertakeCount() *EventCount {
	return NewEventCount("overtakes", race.EventOvertake)
}

func (m *EventCount) Name() string { return m.name }

func (m *EventCount) Observe(r race.TickResult) {
	for _, ev := range r.Events {
		if ev.Kind == m.kind {
			m.count++
		}
	}
}

func (m *EventCount) Value() float64 { return float64(m.count) }

func (m *EventCount) Reset() { m.count = 0 }
