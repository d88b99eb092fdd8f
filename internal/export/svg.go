package export

import (
	"fmt"
	"strings"
)

var traceColors = []string{
	"#ff6ac1", "#57c7ff", "#5af78e", "#f3f99d", "#9aedfe", "#ff9f43",
	"#caa9fa", "#ff5c57", "#00d7af", "#d7afff", "#ffd7af", "#87d7ff",
}

// Trace is one competitor's distance series over the race.
type Trace struct {
	Name   string
	Values []float64
}

// TracesToSVG renders distance-vs-time polylines for every competitor
// plus a finish line at the race distance.
func TracesToSVG(times []float64, traces []Trace, distance float64, width, height int) string {
	if len(times) < 2 || len(traces) == 0 {
		return ""
	}

	pad := 10.0
	plotW := float64(width) - 2*pad
	plotH := float64(height) - 2*pad
	tMax := times[len(times)-1]
	if tMax <= 0 {
		tMax = 1
	}
	if distance <= 0 {
		distance = 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	finishY := pad
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#555555" stroke-dasharray="4 4"/>
`, pad, finishY, pad+plotW, finishY))

	for ti, tr := range traces {
		n := len(tr.Values)
		if n > len(times) {
			n = len(times)
		}
		if n < 2 {
			continue
		}
		color := traceColors[ti%len(traceColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i := 0; i < n; i++ {
			x := pad + times[i]/tMax*plotW
			frac := tr.Values[i] / distance
			if frac > 1 {
				frac = 1
			}
			y := pad + (1-frac)*plotH
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="10" font-family="monospace">%s</text>
`, pad+2, pad+12+float64(ti)*12, color, tr.Name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
