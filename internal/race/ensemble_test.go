package race

import (
	"context"
	"strings"
	"testing"
)

func TestEnsembleReproducible(t *testing.T) {
	params := DefaultParams()
	cfg := RaceConfig{Distance: 1600, Type: Mile, Surface: Turf}

	run := func() []Result {
		ens := NewEnsemble(cfg, testField(), params, 8, 1000)
		ens.MaxTicks = 20000
		results, err := ens.Run(context.Background(), 0.1)
		if err != nil {
			t.Fatalf("ensemble failed: %v", err)
		}
		return results
	}

	a := run()
	b := run()
	for i := range a {
		if len(a[i].Finishers) != len(b[i].Finishers) || a[i].Ticks != b[i].Ticks {
			t.Fatalf("run %d not reproducible", i)
		}
		for j := range a[i].Finishers {
			if a[i].Finishers[j] != b[i].Finishers[j] {
				t.Fatalf("run %d finisher %d differs", i, j)
			}
		}
	}
}

func TestEnsembleCancellation(t *testing.T) {
	params := DefaultParams()
	cfg := RaceConfig{Distance: 2400, Type: Long, Surface: Turf}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ens := NewEnsemble(cfg, testField(), params, 4, 1)
	if _, err := ens.Run(ctx, 0.1); err == nil {
		t.Error("cancelled ensemble should report an error")
	}
}

// A depleted stat line retires mid-race: never before the window
// opens, never in the last stretch, always blaming exhaustion or a
// broken will.
func TestEnsembleRetirementWindow(t *testing.T) {
	params := DefaultParams()
	params.DNF.Gate = 1.0
	params.DNF.BaseChance = 0.05
	params.DNF.Cap = 1.0

	frail := testProfile("Hollow", Stats{Speed: 600, Power: 600, Wit: 600}, PaceChaser)
	pacer := testProfile("Steady", evenStats(600), PaceChaser)
	cfg := RaceConfig{Distance: 3000, Type: Long, Surface: Turf}

	ens := NewEnsemble(cfg, []Profile{frail, pacer}, params, 100, 42)
	ens.MaxTicks = 50000
	results, err := ens.Run(context.Background(), 0.1)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	dnfs := 0
	for _, res := range results {
		for _, d := range res.DNFs {
			if d.Name != "Hollow" {
				t.Fatalf("unexpected DNF for %s: %q", d.Name, d.Reason)
			}
			dnfs++
			ratio := d.Distance / cfg.Distance
			if ratio <= 0.3 || ratio >= 0.85 {
				t.Errorf("DNF at progress %v, outside (0.3, 0.85)", ratio)
			}
			if !strings.Contains(d.Reason, "exhaustion") && !strings.Contains(d.Reason, "loss of will") {
				t.Errorf("DNF reason %q should mention exhaustion or loss of will", d.Reason)
			}
		}
	}
	if dnfs == 0 {
		t.Error("expected retirements in at least some trials")
	}
}
