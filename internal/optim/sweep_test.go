package optim

import (
	"context"
	"testing"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

func sweepField() []race.Profile {
	apt := [4]race.Grade{race.GradeB, race.GradeB, race.GradeB, race.GradeB}
	surf := [2]race.Grade{race.GradeB, race.GradeB}
	return []race.Profile{
		{Name: "Target", Stats: race.Stats{Speed: 600, Stamina: 600, Power: 600, Guts: 600, Wit: 600}, Style: race.PaceChaser, DistanceApt: apt, SurfaceApt: surf},
		{Name: "Rival", Stats: race.Stats{Speed: 300, Stamina: 300, Power: 300, Guts: 300, Wit: 600}, Style: race.PaceChaser, DistanceApt: apt, SurfaceApt: surf},
	}
}

func TestStatSweepSeparatesOutcomes(t *testing.T) {
	cfg := race.RaceConfig{Distance: 1200, Type: race.Sprint, Surface: race.Turf, Condition: race.Good}
	sweep := NewStatSweep(cfg, sweepField(), race.DefaultParams(), 8, 1)
	sweep.MaxTicks = 10000

	points, err := sweep.Run(context.Background(), 0, "speed", []int{100, 1100}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Runs != 8 {
			t.Errorf("value %d: expected 8 runs, got %d", p.Value, p.Runs)
		}
	}
	// Two-competitor fields normalize to the band edges, so the sweep
	// flips the target between clear underdog and clear favorite.
	if points[0].Wins != 0 {
		t.Errorf("underdog point: expected 0 wins, got %d", points[0].Wins)
	}
	if points[1].Wins != points[1].Runs {
		t.Errorf("favorite point: expected %d wins, got %d", points[1].Runs, points[1].Wins)
	}
}

func TestStatSweepBadInput(t *testing.T) {
	cfg := race.RaceConfig{Distance: 1200, Type: race.Sprint, Surface: race.Turf, Condition: race.Good}
	sweep := NewStatSweep(cfg, sweepField(), race.DefaultParams(), 2, 1)

	if _, err := sweep.Run(context.Background(), 5, "speed", []int{400}, 0.5); err == nil {
		t.Error("expected error for out-of-range competitor")
	}
	if _, err := sweep.Run(context.Background(), 0, "luck", []int{400}, 0.5); err == nil {
		t.Error("expected error for unknown stat")
	}
}

func TestBest(t *testing.T) {
	if _, ok := Best(nil); ok {
		t.Error("expected no best for empty sweep")
	}

	points := []SweepPoint{
		{Value: 400, Wins: 2, Runs: 10},
		{Value: 600, Wins: 7, Runs: 10},
		{Value: 800, Wins: 7, Runs: 10},
	}
	best, ok := Best(points)
	if !ok {
		t.Fatal("expected a best point")
	}
	if best.Value != 600 {
		t.Errorf("expected ties to keep the lower value, got %d", best.Value)
	}
}
