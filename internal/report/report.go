package report

import (
	"fmt"
	"strings"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

// Generate builds the final classification as a slice of lines:
// finishers in arrival order, then non-finishers with their frozen
// distance and reason.
func Generate(cfg race.RaceConfig, result race.Result) []string {
	lines := make([]string, 0, len(result.Finishers)+len(result.DNFs)+2)
	lines = append(lines, fmt.Sprintf("%s %s %.0fm, %d ticks",
		cfg.Type, cfg.Surface, cfg.Distance, result.Ticks))

	for i, f := range result.Finishers {
		margin := ""
		if i > 0 {
			margin = fmt.Sprintf(" (+%.2fs)", f.FinishTime-result.Finishers[0].FinishTime)
		}
		lines = append(lines, fmt.Sprintf("%2d. %-12s %s%s", i+1, f.Name, formatClock(f.FinishTime), margin))
	}

	for _, d := range result.DNFs {
		lines = append(lines, fmt.Sprintf("DNF %-12s %.0fm at %s: %s",
			d.Name, d.Distance, formatClock(d.Time), d.Reason))
	}
	return lines
}

// Summary condenses a batch of trial results: finish statistics per
// competitor plus DNF counts and reasons.
func Summary(results []race.Result) []string {
	type tally struct {
		wins    int
		runs    int
		dnfs    int
		total   float64
		reasons map[string]int
	}

	byName := map[string]*tally{}
	var names []string
	get := func(name string) *tally {
		t, ok := byName[name]
		if !ok {
			t = &tally{reasons: map[string]int{}}
			byName[name] = t
			names = append(names, name)
		}
		return t
	}

	for _, res := range results {
		for i, f := range res.Finishers {
			t := get(f.Name)
			t.runs++
			t.total += f.FinishTime
			if i == 0 {
				t.wins++
			}
		}
		for _, d := range res.DNFs {
			t := get(d.Name)
			t.dnfs++
			t.reasons[d.Reason]++
		}
	}

	lines := []string{fmt.Sprintf("%d trials", len(results))}
	for _, name := range names {
		t := byName[name]
		avg := 0.0
		if t.runs > 0 {
			avg = t.total / float64(t.runs)
		}
		line := fmt.Sprintf("%-12s wins %d/%d, avg finish %s", name, t.wins, len(results), formatClock(avg))
		if t.dnfs > 0 {
			var parts []string
			for reason, n := range t.reasons {
				parts = append(parts, fmt.Sprintf("%s x%d", reason, n))
			}
			line += fmt.Sprintf(", DNF %d (%s)", t.dnfs, strings.Join(parts, "; "))
		}
		lines = append(lines, line)
	}
	return lines
}

func formatClock(seconds float64) string {
	mins := int(seconds) / 60
	rest := seconds - float64(mins*60)
	return fmt.Sprintf("%d:%06.3f", mins, rest)
}
