package race

import "fmt"

type EventKind int

const (
	EventStart EventKind = iota
	EventIncident
	EventOvertake
	EventDuel
	EventDNF
	EventFinish
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventIncident:
		return "incident"
	case EventOvertake:
		return "overtake"
	case EventDuel:
		return "duel"
	case EventDNF:
		return "dnf"
	case EventFinish:
		return "finish"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is the engine's structured output besides the ranking
// snapshot. Passed is only meaningful for overtakes, Incident for
// incident events, Reason for DNFs.
type Event struct {
	Time     float64
	Tick     int
	ID       int
	Kind     EventKind
	Incident string
	Passed   int
	Reason   string
}
