package render

import (
	"fmt"
	"sort"
	"strings"

	"procsim/internal/core"
)

const pxPerUnit = 40

// SvgGantt renders the timeline as a compact SVG: one row per process
// plus a shared bottom row for idle and overhead segments.
func SvgGantt(timeline core.Timeline) string {
	if len(timeline) == 0 {
		return "<svg width='600' height='120'></svg>"
	}

	pidSet := make(map[string]struct{})
	for _, iv := range timeline {
		if iv.Busy() {
			pidSet[iv.Occupant] = struct{}{}
		}
	}
	pids := make([]string, 0, len(pidSet))
	for pid := range pidSet {
		pids = append(pids, pid)
	}
	sort.Strings(pids)

	rowFor := func(occupant string) int {
		for i, pid := range pids {
			if pid == occupant {
				return i
			}
		}
		return len(pids) // idle and overhead share the bottom row
	}

	span := timeline.Makespan()
	height := 40*(len(pids)+1) + 50
	width := (span + 2) * pxPerUnit
	if width < 600 {
		width = 600
	}

	var rects, labels strings.Builder
	for _, iv := range timeline {
		y := 45 + rowFor(iv.Occupant)*40
		x := (iv.Start + 1) * pxPerUnit
		w := (iv.End - iv.Start) * pxPerUnit
		fill, opacity := "#999999", "0.35"
		if iv.Occupant == core.OccupantOverhead {
			fill = "#555555"
		}
		if iv.Busy() {
			fill, opacity = colorForPid(iv.Occupant, pids), "0.85"
		}
		fmt.Fprintf(&rects, "<rect x='%d' y='%d' width='%d' height='24' rx='6' ry='6' fill='%s' opacity='%s'/>", x, y, w, fill, opacity)
		fmt.Fprintf(&labels, "<text x='%d' y='%d' font-size='12' fill='#fff' text-anchor='middle'>%s</text>",
			x+w/2, y+16, occupantLabel(iv.Occupant))
	}

	var grid strings.Builder
	for i := 0; i <= span; i++ {
		x := (i + 1) * pxPerUnit
		fmt.Fprintf(&grid, "<line x1='%d' y1='20' x2='%d' y2='%d' stroke='#eee'/>", x, x, height-20)
		fmt.Fprintf(&grid, "<text x='%d' y='%d' font-size='11' fill='#666'>%d</text>", x-4, height-6, i)
	}

	var ylabels strings.Builder
	for i, pid := range pids {
		fmt.Fprintf(&ylabels, "<text x='10' y='%d' font-size='12' fill='#555'>%s</text>", 60+i*40, pid)
	}
	fmt.Fprintf(&ylabels, "<text x='10' y='%d' font-size='12' fill='#555'>IDLE</text>", 60+len(pids)*40)

	return fmt.Sprintf("<svg width='%d' height='%d' xmlns='http://www.w3.org/2000/svg'>"+
		"<g>%s</g><g>%s</g><g>%s</g><g>%s</g>"+
		"<text x='10' y='16' font-size='12' fill='#333'>Time</text></svg>",
		width, height, grid.String(), ylabels.String(), rects.String(), labels.String())
}

// colorForPid walks a simple HSL wheel so neighboring rows get
// visually distinct colors.
func colorForPid(pid string, pids []string) string {
	i := 0
	for n, p := range pids {
		if p == pid {
			i = n
			break
		}
	}
	return fmt.Sprintf("hsl(%d,80%%,45%%)", (i*67)%360)
}
