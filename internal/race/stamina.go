package race

import "math"

// updateFatigueStamina advances one competitor's fatigue and stamina
// for a tick. Fatigue accrues at a phase rate damped by the Stamina
// stat with a floor so it never stops accruing; stamina drains by a
// phase multiplier plus a fatigue feedback term, damped by Guts, and
// clamps to a low non-zero floor. True exhaustion is a DNF outcome,
// not stamina hitting zero.
func updateFatigueStamina(fatigue, stamina float64, stats Stats, phase Phase, raceType RaceType, params *Params) (float64, float64) {
	rate := params.FatigueRate[raceType][phase]
	damp := 1.0 - float64(stats.Stamina)/params.FatigueStaminaScale*params.FatigueDampStrength
	rate *= math.Max(params.FatigueDampFloor, damp)
	fatigue += rate

	drain := params.DrainBase * params.DrainPhaseMult[phase]
	drain += fatigue * params.DrainFatigueFeedback
	gutsDamp := 1.0 - float64(stats.Guts)/params.DrainGutsScale*params.DrainGutsStrength
	drain *= math.Max(params.DrainGutsFloor, gutsDamp)

	stamina = math.Max(params.StaminaFloor, stamina-drain)
	return fatigue, stamina
}
