package render

import (
	"fmt"
	"strings"

	"procsim/internal/core"
)

func occupantLabel(occupant string) string {
	switch occupant {
	case core.OccupantIdle:
		return "IDLE"
	case core.OccupantOverhead:
		return "CS"
	default:
		return occupant
	}
}

// AsciiGantt renders the timeline as a one-line gantt bar with a tick
// row underneath, each segment sized proportionally to its duration.
func AsciiGantt(timeline core.Timeline) string {
	if len(timeline) == 0 {
		return "(empty timeline)"
	}

	var bar strings.Builder
	ticks := []string{fmt.Sprint(timeline[0].Start)}
	for _, iv := range timeline {
		width := iv.End - iv.Start
		if width < 1 {
			width = 1
		}
		bar.WriteString("|")
		bar.WriteString(center(occupantLabel(iv.Occupant), width*2))
		ticks = append(ticks, fmt.Sprint(iv.End))
	}
	bar.WriteString("|")

	return bar.String() + "\n" + strings.Join(ticks, " ")
}

// center pads s with spaces to width, extra space going to the right.
// Strings longer than width are returned unchanged.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
