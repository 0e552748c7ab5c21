package planner

// DefaultRole is used when no role is configured.
const DefaultRole = "planner"

// RoleInfo describes a user role and its canned prompt suggestions.
type RoleInfo struct {
	Name        string
	Description string
	Suggestions []string
}

// Roles are fixed; suggestion selection is a static lookup with no logic
// beyond membership.
var roles = []RoleInfo{
	{
		Name:        "planner",
		Description: "Evacuation planner preparing borough-level plans",
		Suggestions: []string{
			"What is the clearance time estimate for this borough?",
			"Which transport hubs are the binding constraint?",
			"Compare a phased evacuation against simultaneous release",
		},
	},
	{
		Name:        "responder",
		Description: "Emergency responder coordinating live operations",
		Suggestions: []string{
			"Which routes should be prioritised for emergency vehicles?",
			"Where should assembly points be placed?",
			"What does a station closure do to the current plan?",
		},
	},
	{
		Name:        "analyst",
		Description: "Analyst reviewing plan metrics and assumptions",
		Suggestions: []string{
			"Explain the fairness index for the latest run",
			"How sensitive is clearance time to departure compliance?",
			"Summarise the robustness assumptions",
		},
	},
}

// Roles returns all known roles.
func Roles() []RoleInfo {
	return roles
}

// ValidRole reports whether name is a known role.
func ValidRole(name string) bool {
	for _, r := range roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Suggestions returns the canned prompts for a role, or the default
// role's prompts when the role is unknown.
func Suggestions(role string) []string {
	for _, r := range roles {
		if r.Name == role {
			return r.Suggestions
		}
	}
	return Suggestions(DefaultRole)
}
