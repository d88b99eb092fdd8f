package optim

import (
	"context"
	"fmt"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

// StatSweep varies one competitor's stat across a range of values and
// measures the outcome over an ensemble of seeded races per value.
type StatSweep struct {
	cfg       race.RaceConfig
	profiles  []race.Profile
	params    race.Params
	numRuns   int
	seedStart int64

	MaxTicks int
}

type SweepPoint struct {
	Value int
	Wins  int
	DNFs  int
	Runs  int
}

func (p SweepPoint) WinRate() float64 {
	if p.Runs == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Runs)
}

func NewStatSweep(cfg race.RaceConfig, profiles []race.Profile, params race.Params, numRuns int, seedStart int64) *StatSweep {
	return &StatSweep{
		cfg:       cfg,
		profiles:  profiles,
		params:    params,
		numRuns:   numRuns,
		seedStart: seedStart,
	}
}

// Run sweeps the named stat of the competitor at index id through
// values. Every point reuses the same seed range, so only the stat
// change separates the outcomes.
func (s *StatSweep) Run(ctx context.Context, id int, stat string, values []int, dt float64) ([]SweepPoint, error) {
	if id < 0 || id >= len(s.profiles) {
		return nil, fmt.Errorf("competitor index %d out of range", id)
	}

	points := make([]SweepPoint, 0, len(values))
	for _, val := range values {
		field := make([]race.Profile, len(s.profiles))
		copy(field, s.profiles)
		p, err := withStat(field[id], stat, val)
		if err != nil {
			return nil, err
		}
		field[id] = p

		ens := race.NewEnsemble(s.cfg, field, s.params, s.numRuns, s.seedStart)
		ens.MaxTicks = s.MaxTicks
		results, err := ens.Run(ctx, dt)
		if err != nil {
			return nil, err
		}

		pt := SweepPoint{Value: val, Runs: len(results)}
		for _, res := range results {
			if len(res.Finishers) > 0 && res.Finishers[0].ID == id {
				pt.Wins++
			}
			for _, d := range res.DNFs {
				if d.ID == id {
					pt.DNFs++
				}
			}
		}
		points = append(points, pt)
	}
	return points, nil
}

// Best reports the sweep point with the highest win rate, ties going
// to the lower stat value.
func Best(points []SweepPoint) (SweepPoint, bool) {
	if len(points) == 0 {
		return SweepPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.WinRate() > best.WinRate() {
			best = p
		}
	}
	return best, true
}

func withStat(p race.Profile, stat string, val int) (race.Profile, error) {
	switch stat {
	case "speed":
		p.Stats.Speed = val
	case "stamina":
		p.Stats.Stamina = val
	case "power":
		p.Stats.Power = val
	case "guts":
		p.Stats.Guts = val
	case "wit":
		p.Stats.Wit = val
	default:
		return p, fmt.Errorf("unknown stat: %s", stat)
	}
	return p, nil
}
