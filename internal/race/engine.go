package race

import (
	"fmt"
	"math/rand"
	"sort"
)

// competitorState is mutable per-race state, owned exclusively by the
// engine and indexed by the stable id assigned at setup.
type competitorState struct {
	distance    float64
	stamina     float64
	fatigue     float64
	momentum    float64
	incident    activeIncident
	finished    bool
	finishTime  float64
	dnf         bool
	dnfReason   string
	dnfTime     float64
	duelStarted bool
	duelBoosted bool
	inDuel      bool
}

func (s *competitorState) active() bool {
	return !s.finished && !s.dnf
}

// Position is one row of the per-tick ranking snapshot.
type Position struct {
	ID       int
	Name     string
	Distance float64
	Stamina  float64
	Phase    Phase
	Incident string
	Finished bool
	DNF      bool
}

// TickResult is the full output of one Step call: the ranking after
// the tick plus every event the tick generated.
type TickResult struct {
	Tick      int
	Time      float64
	Positions []Position
	Events    []Event
	Done      bool
}

type Observer interface {
	OnTick(r TickResult)
}

type Metric interface {
	Name() string
	Observe(r TickResult)
	Value() float64
	Reset()
}

type FinishResult struct {
	ID         int
	Name       string
	FinishTime float64
}

type DNFResult struct {
	ID       int
	Name     string
	Distance float64
	Time     float64
	Reason   string
}

// Result is the end-of-race summary. Finishers are ordered by finish
// time ascending; DNFs keep registration order. Finishers plus DNFs
// always cover the whole field.
type Result struct {
	Finishers []FinishResult
	DNFs      []DNFResult
	Events    []Event
	Ticks     int
	Duration  float64
}

// Engine advances a single race one logical tick at a time. It is
// single-threaded: all state is owned by the engine and callers drive
// it synchronously through Step. All randomness comes from the
// injected generator, so a fixed seed reproduces a race exactly.
type Engine struct {
	cfg      RaceConfig
	params   Params
	rng      *rand.Rand
	profiles []Profile
	coeffs   []float64

	states []competitorState
	order  []int // ids in rank order, best first
	rank   []int // previous-tick rank index per id
	duelOn bool

	tick     int
	time     float64
	done     bool
	events   []Event
	warnings []string

	observers []Observer
}

// New validates the setup and builds a ready engine. Non-positive
// distance and an empty field fail fast; malformed per-competitor
// fields are normalized to safe defaults and recorded as warnings
// instead of aborting.
func New(cfg RaceConfig, profiles []Profile, params Params, rng *rand.Rand) (*Engine, error) {
	if cfg.Distance <= 0 {
		return nil, fmt.Errorf("race distance must be positive, got %v", cfg.Distance)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("race needs at least one competitor")
	}
	if rng == nil {
		return nil, fmt.Errorf("race needs an injected random source")
	}
	if cfg.Type < Sprint || cfg.Type > Long {
		return nil, fmt.Errorf("unknown race type %d", int(cfg.Type))
	}

	e := &Engine{
		cfg:      cfg,
		params:   params,
		rng:      rng,
		profiles: make([]Profile, len(profiles)),
		states:   make([]competitorState, len(profiles)),
		order:    make([]int, len(profiles)),
		rank:     make([]int, len(profiles)),
	}

	for i, p := range profiles {
		e.profiles[i] = e.normalize(i, p)
		e.states[i] = competitorState{stamina: 100.0, momentum: 1.0}
		e.order[i] = i
		e.rank[i] = i
	}
	e.coeffs = Coefficients(e.profiles, cfg, &e.params)
	return e, nil
}

func (e *Engine) normalize(id int, p Profile) Profile {
	warn := func(format string, args ...any) {
		e.warnings = append(e.warnings, fmt.Sprintf("%s: ", p.Name)+fmt.Sprintf(format, args...))
	}

	clamp := func(name string, v int) int {
		if v < 0 {
			warn("negative %s stat %d clamped to 0", name, v)
			return 0
		}
		return v
	}
	p.Stats.Speed = clamp("Speed", p.Stats.Speed)
	p.Stats.Stamina = clamp("Stamina", p.Stats.Stamina)
	p.Stats.Power = clamp("Power", p.Stats.Power)
	p.Stats.Guts = clamp("Guts", p.Stats.Guts)
	p.Stats.Wit = clamp("Wit", p.Stats.Wit)

	if p.Style < FrontRunner || p.Style > EndCloser {
		warn("unknown running style %d defaulted to PaceChaser", int(p.Style))
		p.Style = PaceChaser
	}
	for i, g := range p.DistanceApt {
		if g < GradeS || g > GradeG {
			warn("unknown %s distance aptitude defaulted to B", RaceType(i))
			p.DistanceApt[i] = GradeB
		}
	}
	for i, g := range p.SurfaceApt {
		if g < GradeS || g > GradeG {
			warn("unknown %s surface aptitude defaulted to B", Surface(i))
			p.SurfaceApt[i] = GradeB
		}
	}
	return p
}

func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) Config() RaceConfig { return e.cfg }

func (e *Engine) Done() bool { return e.done }

func (e *Engine) Tick() int { return e.tick }

func (e *Engine) Time() float64 { return e.time }

// Warnings reports the setup normalization notes.
func (e *Engine) Warnings() []string { return e.warnings }

// Coefficients returns the per-competitor performance coefficients,
// fixed at setup.
func (e *Engine) Coefficients() []float64 {
	out := make([]float64, len(e.coeffs))
	copy(out, e.coeffs)
	return out
}

// Competitors returns the normalized profiles in registration order.
func (e *Engine) Competitors() []Profile {
	out := make([]Profile, len(e.profiles))
	copy(out, e.profiles)
	return out
}

// Step advances the race by one logical tick of dt seconds and
// returns the resulting snapshot. Calling Step after the race is
// complete returns the final snapshot unchanged.
func (e *Engine) Step(dt float64) TickResult {
	if e.done || dt <= 0 {
		return e.snapshot(nil)
	}

	var tickEvents []Event
	if e.tick == 0 {
		for id := range e.states {
			tickEvents = append(tickEvents, Event{Time: e.time, Tick: 0, ID: id, Kind: EventStart})
		}
	}

	e.tick++
	e.time += dt

	for id := range e.states {
		st := &e.states[id]
		if !st.active() {
			continue
		}
		p := e.profiles[id]
		progress := st.distance / e.cfg.Distance

		if reason, ok := rollDNF(e.rng, progress, p.Stats, p.DistanceApt[e.cfg.Type], p.SurfaceApt[e.cfg.Surface], &e.params.DNF); ok {
			st.dnf = true
			st.dnfReason = reason
			st.dnfTime = e.time
			tickEvents = append(tickEvents, Event{Time: e.time, Tick: e.tick, ID: id, Kind: EventDNF, Reason: reason})
			continue
		}

		if st.incident.Kind == "" {
			if inc, ok := rollIncident(e.rng, e.tick, progress, p.Stats, p.Style, &e.params.Incident); ok {
				st.incident = inc
				st.momentum = e.params.Incident.MomentumPenalty
				tickEvents = append(tickEvents, Event{Time: e.time, Tick: e.tick, ID: id, Kind: EventIncident, Incident: inc.Kind})
			}
		}
		incidentMult := 1.0
		incidentExpired := false
		if st.incident.Kind != "" {
			incidentMult = st.incident.SpeedMult
			st.incident.Remaining--
			incidentExpired = st.incident.Remaining <= 0
		}

		phase := PhaseFor(progress, e.params.Bounds[e.cfg.Type])
		jitter := 1.0 + (e.rng.Float64()*2.0-1.0)*e.params.Jitter
		speed := speedFor(phase, e.coeffs[id], st.fatigue, st.stamina, p.Stats, p.Style, e.cfg.Type, &e.params, jitter)
		speed *= incidentMult
		if st.inDuel {
			speed *= 1.0 + e.duelSpeedBoost(p.Stats.Guts)
		}

		st.fatigue, st.stamina = updateFatigueStamina(st.fatigue, st.stamina, p.Stats, phase, e.cfg.Type, &e.params)

		step := speed * st.momentum * dt
		prev := st.distance
		st.distance += step

		if incidentExpired {
			st.incident = activeIncident{}
			st.momentum = e.params.Incident.MomentumRebound
		}

		if st.distance >= e.cfg.Distance {
			frac := 1.0
			if step > 0 {
				frac = (e.cfg.Distance - prev) / step
			}
			st.distance = e.cfg.Distance
			st.finished = true
			st.finishTime = e.time - dt + dt*frac
			st.inDuel = false
			tickEvents = append(tickEvents, Event{Time: st.finishTime, Tick: e.tick, ID: id, Kind: EventFinish})
		}
	}

	e.rerank()
	tickEvents = append(tickEvents, e.detectOvertakes()...)
	tickEvents = append(tickEvents, e.duelStep()...)

	e.done = e.allSettled()
	e.events = append(e.events, tickEvents...)

	r := e.snapshot(tickEvents)
	for _, o := range e.observers {
		o.OnTick(r)
	}
	return r
}

// rerank sorts every competitor, settled or not, by distance covered
// descending, stable on registration order for ties.
func (e *Engine) rerank() {
	sort.SliceStable(e.order, func(a, b int) bool {
		da, db := e.states[e.order[a]].distance, e.states[e.order[b]].distance
		if da != db {
			return da > db
		}
		return e.order[a] < e.order[b]
	})
}

// detectOvertakes compares the fresh ranking to the previous tick's
// and emits one overtake per competitor whose rank improved, naming
// the competitor now directly behind them. Momentum gets a small
// nudge either way.
func (e *Engine) detectOvertakes() []Event {
	var events []Event
	for pos, id := range e.order {
		st := &e.states[id]
		prev := e.rank[id]
		switch {
		case pos < prev:
			passed := -1
			if pos+1 < len(e.order) {
				passed = e.order[pos+1]
			}
			events = append(events, Event{Time: e.time, Tick: e.tick, ID: id, Kind: EventOvertake, Passed: passed})
			if st.active() {
				st.momentum = minf(e.params.MomentumCeil, st.momentum+e.params.MomentumGain)
			}
		case pos > prev:
			if st.active() {
				st.momentum = maxf(e.params.MomentumFloor, st.momentum-e.params.MomentumLoss)
			}
		}
	}
	for pos, id := range e.order {
		e.rank[id] = pos
	}
	return events
}

func (e *Engine) allSettled() bool {
	for id := range e.states {
		if e.states[id].active() {
			return false
		}
	}
	return true
}

func (e *Engine) snapshot(tickEvents []Event) TickResult {
	positions := make([]Position, len(e.order))
	for pos, id := range e.order {
		st := &e.states[id]
		positions[pos] = Position{
			ID:       id,
			Name:     e.profiles[id].Name,
			Distance: st.distance,
			Stamina:  st.stamina,
			Phase:    PhaseFor(st.distance/e.cfg.Distance, e.params.Bounds[e.cfg.Type]),
			Incident: st.incident.Kind,
			Finished: st.finished,
			DNF:      st.dnf,
		}
	}
	return TickResult{
		Tick:      e.tick,
		Time:      e.time,
		Positions: positions,
		Events:    tickEvents,
		Done:      e.done,
	}
}

// Halt retires every still-active competitor with the given reason.
// Intended for callers that impose an external tick ceiling.
func (e *Engine) Halt(reason string) {
	if e.done {
		return
	}
	for id := range e.states {
		st := &e.states[id]
		if !st.active() {
			continue
		}
		st.dnf = true
		st.dnfReason = reason
		st.dnfTime = e.time
		e.events = append(e.events, Event{Time: e.time, Tick: e.tick, ID: id, Kind: EventDNF, Reason: reason})
	}
	e.done = true
}

// Results summarizes the race so far. After Done it covers the whole
// field: every competitor appears in exactly one of the two lists.
func (e *Engine) Results() Result {
	res := Result{Ticks: e.tick, Duration: e.time}
	for id := range e.states {
		st := &e.states[id]
		switch {
		case st.finished:
			res.Finishers = append(res.Finishers, FinishResult{ID: id, Name: e.profiles[id].Name, FinishTime: st.finishTime})
		case st.dnf:
			res.DNFs = append(res.DNFs, DNFResult{ID: id, Name: e.profiles[id].Name, Distance: st.distance, Time: st.dnfTime, Reason: st.dnfReason})
		}
	}
	sort.SliceStable(res.Finishers, func(a, b int) bool {
		return res.Finishers[a].FinishTime < res.Finishers[b].FinishTime
	})
	res.Events = make([]Event, len(e.events))
	copy(res.Events, e.events)
	return res
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
