package race

import (
	"math/rand"
	"strings"
	"testing"
)

func TestDNFChance(t *testing.T) {
	params := DefaultParams()
	p := &params.DNF

	healthy := dnfChance(evenStats(600), GradeB, GradeB, p)
	if healthy != p.BaseChance {
		t.Errorf("healthy chance = %v, want base %v", healthy, p.BaseChance)
	}

	frail := dnfChance(Stats{Speed: 600, Power: 600, Wit: 600}, GradeB, GradeB, p)
	if frail <= healthy {
		t.Errorf("zero stamina and guts should raise the chance: %v vs %v", frail, healthy)
	}

	worst := dnfChance(Stats{}, GradeG, GradeG, p)
	if worst > p.Cap {
		t.Errorf("chance %v exceeds cap %v", worst, p.Cap)
	}
}

func TestDNFReason(t *testing.T) {
	params := DefaultParams()
	p := &params.DNF

	tests := []struct {
		name  string
		stats Stats
		dist  Grade
		surf  Grade
		want  string
	}{
		{"healthy", evenStats(600), GradeB, GradeB, ""},
		{"no stamina", Stats{Speed: 600, Power: 600, Guts: 600, Wit: 600}, GradeB, GradeB, "exhaustion"},
		{"no guts", Stats{Speed: 600, Stamina: 600, Power: 600, Wit: 600}, GradeB, GradeB, "loss of will"},
		{"bad distance", evenStats(600), GradeG, GradeB, "unsuitable distance"},
		{"bad surface", evenStats(600), GradeB, GradeG, "unsuitable surface"},
		{"everything", Stats{}, GradeG, GradeG, "exhaustion, loss of will, unsuitable distance, unsuitable surface"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dnfReason(tt.stats, tt.dist, tt.surf, p); got != tt.want {
				t.Errorf("dnfReason = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRollDNFWindow(t *testing.T) {
	params := DefaultParams()
	p := &params.DNF
	p.Gate = 1.0
	p.BaseChance = 10.0
	p.Cap = 10.0

	rng := rand.New(rand.NewSource(3))
	stats := Stats{Speed: 600, Power: 600, Wit: 600} // exhaustion-prone

	if _, ok := rollDNF(rng, p.WindowLo-0.01, stats, GradeB, GradeB, p); ok {
		t.Error("DNF fired before the window opens")
	}
	if _, ok := rollDNF(rng, p.WindowHi+0.01, stats, GradeB, GradeB, p); ok {
		t.Error("DNF fired after the window closes")
	}

	reason, ok := rollDNF(rng, 0.5, stats, GradeB, GradeB, p)
	if !ok {
		t.Fatal("forced DNF did not trigger inside the window")
	}
	if !strings.Contains(reason, "exhaustion") || !strings.Contains(reason, "loss of will") {
		t.Errorf("reason %q should mention exhaustion and loss of will", reason)
	}
}

func TestRollDNFNeedsDeficit(t *testing.T) {
	params := DefaultParams()
	p := &params.DNF
	p.Gate = 1.0
	p.BaseChance = 10.0
	p.Cap = 10.0

	// A roll that succeeds with nothing to blame records no DNF.
	rng := rand.New(rand.NewSource(3))
	if _, ok := rollDNF(rng, 0.5, evenStats(600), GradeB, GradeB, p); ok {
		t.Error("DNF recorded without any contributing deficit")
	}
}
