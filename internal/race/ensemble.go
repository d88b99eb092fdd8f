package race

import (
	"context"
	"math/rand"
	"sync"
)

// Ensemble runs the same race setup across consecutive seeds, one
// engine per goroutine. Each run gets its own generator, so results
// are reproducible per seed regardless of scheduling.
type Ensemble struct {
	cfg       RaceConfig
	profiles  []Profile
	params    Params
	numRuns   int
	seedStart int64

	// MaxTicks, when positive, retires still-running fields at the
	// ceiling instead of letting a run go unbounded.
	MaxTicks int
}

func NewEnsemble(cfg RaceConfig, profiles []Profile, params Params, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		cfg:       cfg,
		profiles:  profiles,
		params:    params,
		numRuns:   numRuns,
		seedStart: seedStart,
	}
}

func (e *Ensemble) Run(ctx context.Context, dt float64) ([]Result, error) {
	results := make([]Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			eng, err := New(e.cfg, e.profiles, e.params, rng)
			if err != nil {
				errs[idx] = err
				return
			}

			for !eng.Done() {
				select {
				case <-ctx.Done():
					errs[idx] = ctx.Err()
					return
				default:
				}
				eng.Step(dt)
				if e.MaxTicks > 0 && eng.Tick() >= e.MaxTicks && !eng.Done() {
					eng.Halt("did not complete")
				}
			}
			results[idx] = eng.Results()
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
