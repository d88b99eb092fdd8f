package race

import "math/rand"

// activeIncident is the at-most-one incident a competitor can carry.
// Remaining counts the ticks the speed multiplier still applies.
type activeIncident struct {
	Kind      string
	SpeedMult float64
	Remaining int
}

func incidentChance(stats Stats, style Style, p *IncidentParams) float64 {
	chance := p.BaseChance - float64(stats.Wit)/p.WitScale
	switch style {
	case FrontRunner:
		chance *= p.FrontRunnerMult
	case EndCloser:
		chance *= p.EndCloserMult
	}
	return chance
}

func (p *IncidentParams) kindsFor(progress float64) []IncidentKindSpec {
	switch {
	case progress < p.EarlyCutoff:
		return p.EarlyKinds
	case progress < p.MidCutoff:
		return p.MidKinds
	case progress < p.LateCutoff:
		return p.LateKinds
	}
	return p.FinalKinds
}

// rollIncident decides whether a fresh incident triggers this tick.
// Ticks inside the warm-up window never trigger, and a secondary gate
// keeps incidents rare even when the base chance is non-trivial.
func rollIncident(rng *rand.Rand, tick int, progress float64, stats Stats, style Style, p *IncidentParams) (activeIncident, bool) {
	if tick <= p.WarmupTicks {
		return activeIncident{}, false
	}
	if rng.Float64() >= p.Gate {
		return activeIncident{}, false
	}
	if rng.Float64() >= incidentChance(stats, style, p) {
		return activeIncident{}, false
	}

	pool := p.kindsFor(progress)
	spec := pool[rng.Intn(len(pool))]
	return activeIncident{
		Kind:      spec.Kind,
		SpeedMult: spec.SpeedMult,
		Remaining: spec.Duration,
	}, true
}
