package race

// PhaseFor maps race progress to a phase. Boundary values belong to
// the phase that starts there, and progress outside [0,1] clamps to
// the first or last phase.
func PhaseFor(progress float64, b PhaseBounds) Phase {
	switch {
	case progress >= b.Sprint:
		return PhaseSprint
	case progress >= b.Final:
		return PhaseFinal
	case progress >= b.Mid:
		return PhaseMid
	}
	return PhaseStart
}
