package race

import "math"

// speedFor computes one competitor's instantaneous speed for a tick.
// jitter is the multiplicative noise draw for this tick, supplied by
// the caller so the function itself stays deterministic.
func speedFor(phase Phase, coeff, fatigue, stamina float64, stats Stats, style Style, raceType RaceType, params *Params, jitter float64) float64 {
	band := params.Speeds[raceType]

	var target float64
	switch phase {
	case PhaseStart:
		target = band.Base
	case PhaseMid:
		target = band.Top
	case PhaseFinal:
		target = band.Top * params.FinalPremium
	default:
		target = band.Sprint
	}

	adj := params.StyleAdjust[raceType][style]
	switch phase {
	case PhaseStart:
		target += target * adj.Start
	case PhaseMid:
		target += target * adj.Mid
	default:
		target += target * adj.Final
	}

	target *= coeff

	ratio := stamina / 100.0
	target *= ratioMult(ratio, params)

	penalty := math.Min(fatigue*params.FatiguePenaltyK, params.FatiguePenaltyCap)
	target *= 1.0 - penalty

	eff := ratio * (0.7 + 0.3*float64(stats.Guts)/params.GutsEfficiencyScale)
	for i, tier := range params.EffectiveTiers {
		if eff < tier {
			target *= params.EffectiveMults[i]
			break
		}
	}

	target *= jitter

	return math.Max(target, band.Base*params.SpeedFloorFrac)
}

func ratioMult(ratio float64, params *Params) float64 {
	for i, tier := range params.RatioTiers {
		if ratio > tier {
			return params.RatioMults[i]
		}
	}
	return params.RatioMults[4]
}
