package race

import (
	"math"
	"testing"
)

func testProfile(name string, stats Stats, style Style) Profile {
	return Profile{
		Name:        name,
		Stats:       stats,
		Style:       style,
		DistanceApt: [4]Grade{GradeB, GradeB, GradeB, GradeB},
		SurfaceApt:  [2]Grade{GradeB, GradeB},
	}
}

func evenStats(v int) Stats {
	return Stats{Speed: v, Stamina: v, Power: v, Guts: v, Wit: v}
}

func TestCoefficientsUniformField(t *testing.T) {
	params := DefaultParams()
	cfg := RaceConfig{Distance: 2000, Type: Medium, Surface: Turf}

	profiles := []Profile{
		testProfile("a", evenStats(500), PaceChaser),
		testProfile("b", evenStats(500), PaceChaser),
		testProfile("c", evenStats(500), PaceChaser),
	}

	coeffs := Coefficients(profiles, cfg, &params)
	for i, c := range coeffs {
		if c != 1.0 {
			t.Errorf("coefficient %d = %v, want 1.0 for a field with no spread", i, c)
		}
	}
}

func TestCoefficientsBand(t *testing.T) {
	params := DefaultParams()

	for rt := Sprint; rt <= Long; rt++ {
		cfg := RaceConfig{Distance: 2000, Type: rt, Surface: Turf}
		profiles := []Profile{
			testProfile("weak", evenStats(200), PaceChaser),
			testProfile("mid", evenStats(600), PaceChaser),
			testProfile("strong", evenStats(1000), PaceChaser),
		}

		coeffs := Coefficients(profiles, cfg, &params)
		band := params.NormBand[rt]

		if math.Abs(coeffs[0]-band.Min) > 1e-9 {
			t.Errorf("%v: weakest coefficient = %v, want band min %v", rt, coeffs[0], band.Min)
		}
		if math.Abs(coeffs[2]-(band.Min+band.Width)) > 1e-9 {
			t.Errorf("%v: strongest coefficient = %v, want band max %v", rt, coeffs[2], band.Min+band.Width)
		}
		if coeffs[1] <= coeffs[0] || coeffs[1] >= coeffs[2] {
			t.Errorf("%v: middle coefficient %v outside (%v, %v)", rt, coeffs[1], coeffs[0], coeffs[2])
		}
	}
}

func TestCoefficientsAptitudeOrdering(t *testing.T) {
	params := DefaultParams()
	cfg := RaceConfig{Distance: 2400, Type: Long, Surface: Turf}

	suited := testProfile("suited", evenStats(600), PaceChaser)
	suited.DistanceApt[Long] = GradeS
	unsuited := testProfile("unsuited", evenStats(600), PaceChaser)
	unsuited.DistanceApt[Long] = GradeG

	coeffs := Coefficients([]Profile{suited, unsuited}, cfg, &params)
	if coeffs[0] <= coeffs[1] {
		t.Errorf("S aptitude coefficient %v should exceed G aptitude coefficient %v", coeffs[0], coeffs[1])
	}

	band := params.NormBand[Long]
	if coeffs[0] != band.Min+band.Width || coeffs[1] != band.Min {
		t.Errorf("two-competitor field should span the band, got %v and %v", coeffs[0], coeffs[1])
	}
}

func TestRawCoefficientStylePriority(t *testing.T) {
	params := DefaultParams()
	cfg := RaceConfig{Distance: 1600, Type: Mile, Surface: Turf}

	// Front runners weight Wit above Power, pace chasers the reverse.
	stats := Stats{Speed: 500, Stamina: 500, Power: 200, Guts: 500, Wit: 900}
	fr := testProfile("fr", stats, FrontRunner)
	pc := testProfile("pc", stats, PaceChaser)

	if rawCoefficient(fr, cfg, &params) <= rawCoefficient(pc, cfg, &params) {
		t.Error("wit-heavy stat line should score higher for a front runner than a pace chaser")
	}
}
