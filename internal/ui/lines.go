// Package ui holds the HUD and debug overlay. The text layout is shared by
// the graphical and terminal hosts; drawing needs the ebiten build tag.
package ui

import (
	"fmt"
	"strings"

	"ringjump/internal/core"
	"ringjump/internal/session"
)

// StatusLines summarizes a snapshot for display.
func StatusLines(snap session.Snapshot, paused bool) []string {
	lines := make([]string, 0, 4+len(snap.Agents))
	title := strings.ToUpper(snap.Mode.String())
	if paused {
		title += "  [paused]"
	}
	lines = append(lines, title)
	if snap.Mode == session.Solo {
		lines = append(lines, fmt.Sprintf("Stage %d  %d/%d", snap.Stage, snap.Collected, snap.Target))
	} else {
		lines = append(lines, fmt.Sprintf("Pickups left %d", snap.Remaining))
	}
	for i, a := range snap.Agents {
		state := "on " + fmt.Sprint(a.Circle)
		switch {
		case !a.Alive:
			state = "dead"
		case a.Armed:
			state += fmt.Sprintf("  armed %.2fs", a.TapTimer)
		}
		lines = append(lines, fmt.Sprintf("P%d %5d  %s", i+1, a.Score, state))
	}
	lines = append(lines, fmt.Sprintf("t=%.1fs", snap.Time))
	if snap.Finished {
		lines = append(lines, finishedLine(snap))
	}
	return lines
}

func finishedLine(snap session.Snapshot) string {
	if snap.Mode != session.Duel || len(snap.Scores) < 2 {
		return fmt.Sprintf("Game over  score %d  (R to restart)", sum(snap.Scores))
	}
	switch a, b := snap.Scores[0], snap.Scores[1]; {
	case a > b:
		return "P1 wins  (R to restart)"
	case b > a:
		return "P2 wins  (R to restart)"
	default:
		return "Draw  (R to restart)"
	}
}

func sum(v []int) int {
	total := 0
	for _, x := range v {
		total += x
	}
	return total
}

// ParamLines flattens a parameter snapshot into "label: value" lines with a
// heading per group.
func ParamLines(ps core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range ps.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}
