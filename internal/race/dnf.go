package race

import (
	"math"
	"math/rand"
	"strings"
)

// dnfChance derives the per-check probability from stat deficits and
// the worst aptitude grades. Healthy stat lines stay near the tiny
// base chance.
func dnfChance(stats Stats, distApt, surfApt Grade, p *DNFParams) float64 {
	chance := p.BaseChance
	for _, v := range []int{stats.Speed, stats.Stamina, stats.Power, stats.Guts, stats.Wit} {
		if v < p.StatCut {
			chance += float64(p.StatCut-v) * p.StatPenalty
		}
	}

	mult := 1.0
	if distApt == GradeG {
		mult += p.AptPenalty
	}
	if surfApt == GradeG {
		mult += p.AptPenalty
	}
	if stats.Stamina < p.LowStatCut || stats.Guts < p.LowStatCut {
		mult += p.LowStatPenalty
	}

	return math.Min(chance*mult, p.Cap)
}

// dnfReason composes the reason text from whichever deficits
// contributed. An empty string means no deficit applies, so no DNF is
// recorded even when the roll succeeded.
func dnfReason(stats Stats, distApt, surfApt Grade, p *DNFParams) string {
	var reasons []string
	if stats.Stamina < p.LowStatCut {
		reasons = append(reasons, "exhaustion")
	}
	if stats.Guts < p.LowStatCut {
		reasons = append(reasons, "loss of will")
	}
	if distApt == GradeG {
		reasons = append(reasons, "unsuitable distance")
	}
	if surfApt == GradeG {
		reasons = append(reasons, "unsuitable surface")
	}
	return strings.Join(reasons, ", ")
}

// rollDNF checks one competitor for a mid-race retirement. It only
// fires inside the progress window, behind a gate roll that keeps the
// check frequency low.
func rollDNF(rng *rand.Rand, progress float64, stats Stats, distApt, surfApt Grade, p *DNFParams) (string, bool) {
	if progress < p.WindowLo || progress > p.WindowHi {
		return "", false
	}
	if rng.Float64() >= p.Gate {
		return "", false
	}
	if rng.Float64() >= dnfChance(stats, distApt, surfApt, p) {
		return "", false
	}
	reason := dnfReason(stats, distApt, surfApt, p)
	if reason == "" {
		return "", false
	}
	return reason, true
}
