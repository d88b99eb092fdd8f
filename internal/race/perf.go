package race

// stat priority orders per running style, highest priority first.
var statPriority = [4][5]int{
	FrontRunner: {statSpeed, statWit, statPower, statGuts, statStamina},
	PaceChaser:  {statSpeed, statPower, statWit, statGuts, statStamina},
	LateSurger:  {statSpeed, statPower, statWit, statStamina, statGuts},
	EndCloser:   {statSpeed, statPower, statWit, statStamina, statGuts},
}

const (
	statSpeed = iota
	statStamina
	statPower
	statGuts
	statWit
)

func statValue(s Stats, idx int) int {
	switch idx {
	case statSpeed:
		return s.Speed
	case statStamina:
		return s.Stamina
	case statPower:
		return s.Power
	case statGuts:
		return s.Guts
	}
	return s.Wit
}

func statWeight(w StatWeights, idx int) float64 {
	switch idx {
	case statSpeed:
		return w.Speed
	case statStamina:
		return w.Stamina
	case statPower:
		return w.Power
	case statGuts:
		return w.Guts
	}
	return w.Wit
}

// rawCoefficient is the pre-normalization performance score: weighted
// stats boosted by the style's priority order, scaled by distance and
// surface aptitude.
func rawCoefficient(p Profile, cfg RaceConfig, params *Params) float64 {
	weights := params.Weights[cfg.Type]
	order := statPriority[p.Style]

	sum := 0.0
	for i, idx := range order {
		sum += float64(statValue(p.Stats, idx)) * statWeight(weights, idx) * params.PriorityMult[i]
	}

	apt := params.AptMult[cfg.Type]
	sum *= apt[p.DistanceApt[cfg.Type]]
	sum *= apt[p.SurfaceApt[cfg.Surface]]
	return sum
}

// Coefficients computes the per-competitor performance coefficients
// for a field: raw weighted scores min-max scaled into the race type's
// normalization band. A field with no spread maps to 1.0 for everyone.
// Computed once at setup, never mutated afterwards.
func Coefficients(profiles []Profile, cfg RaceConfig, params *Params) []float64 {
	raw := make([]float64, len(profiles))
	for i, p := range profiles {
		raw[i] = rawCoefficient(p, cfg, params)
	}
	if len(raw) == 0 {
		return raw
	}

	minPerf, maxPerf := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < minPerf {
			minPerf = v
		}
		if v > maxPerf {
			maxPerf = v
		}
	}

	band := params.NormBand[cfg.Type]
	coeffs := make([]float64, len(raw))
	for i, v := range raw {
		if maxPerf-minPerf > 0 {
			coeffs[i] = band.Min + (v-minPerf)/(maxPerf-minPerf)*band.Width
		} else {
			coeffs[i] = 1.0
		}
	}
	return coeffs
}
