package planner

import "fmt"

// FallbackMessage synthesizes a local assistant reply for when the backend
// is unreachable or returns an error. The transcript never shows a raw
// failure; the user sees a contextual message and can retry.
func FallbackMessage(role, page string) string {
	base := "I can't reach the planning service right now. "
	switch page {
	case "plan":
		base += "Your borough plan request wasn't processed; the last computed results are still valid. "
	case "results":
		base += "Result metrics may be stale until the connection recovers. "
	}
	switch role {
	case "responder":
		return base + "For live operations, fall back to the printed borough playbook and check again shortly."
	case "analyst":
		return base + "Previously exported metrics are unaffected. Please try again shortly."
	default:
		return base + "Please try again shortly."
	}
}

// PlanErrorMessage wraps a plan failure for display.
func PlanErrorMessage(boroughName string) string {
	return fmt.Sprintf("Planning for **%s** is unavailable right now. 🔴 The service could not be reached; existing plans remain in effect.", boroughName)
}
