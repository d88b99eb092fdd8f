package metrics

import "github.com/WinandMe/UmaRacingProject-sub000/internal/race"

// AvgFinishTime averages the times of finish events seen so far.
type AvgFinishTime struct {
	name  string
	sum   float64
	count int
}

func NewAvgFinishTime() *AvgFinishTime {
	return &AvgFinishTime{name: "avg_finish_time"}
}

func (m *AvgFinishTime) Name() string { return m.name }

func (m *AvgFinishTime) Observe(r race.TickResult) {
	for _, ev := range r.Events {
		if ev.Kind == race.EventFinish {
			m.sum += ev.Time
			m.count++
		}
	}
}

func (m *AvgFinishTime) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *AvgFinishTime) Reset() {
	m.sum = 0
	m.count = 0
}
