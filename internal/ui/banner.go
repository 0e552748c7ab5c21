package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/itszrong/evacplan/internal/planner"
)

// FormatClearance renders a clearance time in minutes as a compact
// human-readable duration ("45m", "3h07m").
func FormatClearance(minutes float64) string {
	total := int(minutes + 0.5)
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	h := total / 60
	m := total % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// RenderBanner renders the results banner for a plan: headline metrics in
// a bordered box followed by route shares. width bounds the banner; route
// names are truncated to fit.
func (s *Styles) RenderBanner(result *planner.PlanResult, width int) string {
	if width <= 0 {
		width = 80
	}

	metrics := fmt.Sprintf("clearance %s  ·  fairness %.2f  ·  robustness %.2f",
		FormatClearance(result.ClearanceTimeMinutes),
		result.FairnessIndex,
		result.Robustness,
	)

	var b strings.Builder
	b.WriteString(s.Title.Render(result.Borough))
	b.WriteString("\n")
	b.WriteString(metrics)

	if len(result.Routes) > 0 {
		b.WriteString("\n")
		for i, r := range result.Routes {
			if i > 0 {
				b.WriteString("\n")
			}
			share := fmt.Sprintf("%3.0f%%", r.Share*100)
			label := runewidth.Truncate(r.Name, width-14, "…")
			b.WriteString(s.Muted.Render(share+" "+r.Mode) + "  " + label)
		}
	}

	box := s.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.Border).
		Padding(0, 1).
		Width(width - 2)

	return box.Render(b.String())
}
