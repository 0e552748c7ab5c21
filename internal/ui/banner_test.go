package ui

import (
	"strings"
	"testing"

	"github.com/itszrong/evacplan/internal/planner"
)

func TestFormatClearance(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{187.5, "3h08m"},
		{120, "2h"},
	}
	for _, tt := range tests {
		if got := FormatClearance(tt.minutes); got != tt.want {
			t.Errorf("FormatClearance(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestRenderBanner(t *testing.T) {
	s := testStyles(t)
	result := &planner.PlanResult{
		Borough:              "Newham",
		ClearanceTimeMinutes: 187.5,
		FairnessIndex:        0.82,
		Robustness:           0.74,
		Routes: []planner.RouteSummary{
			{Name: "Stratford corridor", Mode: "rail", Share: 0.6},
			{Name: "A118 eastbound", Mode: "road", Share: 0.4},
		},
	}

	got := s.RenderBanner(result, 80)
	for _, want := range []string{"Newham", "3h08m", "0.82", "0.74", "Stratford corridor", "60%"} {
		if !strings.Contains(got, want) {
			t.Errorf("banner missing %q:\n%s", want, got)
		}
	}
}
