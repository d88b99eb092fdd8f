package race

import "testing"

func TestSpeedFatigueMonotone(t *testing.T) {
	params := DefaultParams()
	stats := evenStats(500)

	fresh := speedFor(PhaseMid, 1.0, 0.0, 100.0, stats, PaceChaser, Medium, &params, 1.0)
	tired := speedFor(PhaseMid, 1.0, 2.0, 100.0, stats, PaceChaser, Medium, &params, 1.0)
	if tired >= fresh {
		t.Errorf("fatigued speed %v should be below fresh speed %v", tired, fresh)
	}

	// The fatigue penalty caps out.
	capped := speedFor(PhaseMid, 1.0, 100.0, 100.0, stats, PaceChaser, Medium, &params, 1.0)
	wantFloor := fresh * (1.0 - params.FatiguePenaltyCap)
	if capped < wantFloor-1e-9 {
		t.Errorf("capped fatigue speed %v fell below %v", capped, wantFloor)
	}
}

func TestSpeedStaminaMonotone(t *testing.T) {
	params := DefaultParams()
	stats := evenStats(500)

	full := speedFor(PhaseSprint, 1.0, 0.0, 100.0, stats, PaceChaser, Medium, &params, 1.0)
	low := speedFor(PhaseSprint, 1.0, 0.0, 15.0, stats, PaceChaser, Medium, &params, 1.0)
	if low >= full {
		t.Errorf("low stamina speed %v should be below full stamina speed %v", low, full)
	}
}

func TestSpeedFloor(t *testing.T) {
	params := DefaultParams()
	stats := evenStats(0)

	// A terrible coefficient with every penalty active still clamps
	// to the floor fraction of base speed.
	got := speedFor(PhaseStart, 0.01, 100.0, 5.0, stats, EndCloser, Long, &params, 0.98)
	want := params.Speeds[Long].Base * params.SpeedFloorFrac
	if got != want {
		t.Errorf("speed = %v, want floor %v", got, want)
	}
}

func TestSpeedPhaseTargets(t *testing.T) {
	params := DefaultParams()
	stats := evenStats(1000) // high guts keeps stamina tiers neutral
	style := PaceChaser

	start := speedFor(PhaseStart, 1.0, 0.0, 100.0, stats, style, Medium, &params, 1.0)
	mid := speedFor(PhaseMid, 1.0, 0.0, 100.0, stats, style, Medium, &params, 1.0)
	final := speedFor(PhaseFinal, 1.0, 0.0, 100.0, stats, style, Medium, &params, 1.0)

	if start >= mid {
		t.Errorf("start speed %v should be below mid speed %v", start, mid)
	}
	if start >= final {
		t.Errorf("start speed %v should be below final speed %v", start, final)
	}
}

func TestSpeedJitterScales(t *testing.T) {
	params := DefaultParams()
	stats := evenStats(500)

	lo := speedFor(PhaseMid, 1.0, 0.0, 100.0, stats, PaceChaser, Medium, &params, 0.98)
	hi := speedFor(PhaseMid, 1.0, 0.0, 100.0, stats, PaceChaser, Medium, &params, 1.02)
	if lo >= hi {
		t.Errorf("jitter 0.98 speed %v should be below jitter 1.02 speed %v", lo, hi)
	}
}

func TestRatioMult(t *testing.T) {
	params := DefaultParams()

	tests := []struct {
		ratio float64
		want  float64
	}{
		{1.0, 1.02},
		{0.7, 1.00},
		{0.5, 0.98},
		{0.3, 0.95},
		{0.1, 0.90},
	}
	for _, tt := range tests {
		if got := ratioMult(tt.ratio, &params); got != tt.want {
			t.Errorf("ratioMult(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}
