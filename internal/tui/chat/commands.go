package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/itszrong/evacplan/internal/planner"
	"github.com/itszrong/evacplan/internal/session"
)

const helpText = `Commands:
  /help         show this help
  /clear        clear the conversation
  /role <name>  switch role (planner, responder, analyst)
  /suggestions  show prompt suggestions for the current role
  /quit         exit`

// handleCommand processes slash commands. It returns handled=false for
// ordinary input.
func (m Model) handleCommand(input string) (bool, tea.Model, tea.Cmd) {
	if !strings.HasPrefix(input, "/") {
		return false, m, nil
	}

	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/help":
		m.appendLocal(session.RoleSystem, helpText)
		return true, m, nil

	case "/clear":
		m.messages = nil
		m.sess = nil
		return true, m, nil

	case "/role":
		if arg == "" {
			m.appendLocal(session.RoleSystem, fmt.Sprintf("Current role: %s", m.role))
			return true, m, nil
		}
		if !planner.ValidRole(arg) {
			names := make([]string, 0, len(planner.Roles()))
			for _, r := range planner.Roles() {
				names = append(names, r.Name)
			}
			m.appendLocal(session.RoleSystem,
				fmt.Sprintf("Unknown role %q. Available: %s", arg, strings.Join(names, ", ")))
			return true, m, nil
		}
		m.role = arg
		m.appendLocal(session.RoleSystem, fmt.Sprintf("Role switched to %s.", arg))
		return true, m, nil

	case "/suggestions":
		var b strings.Builder
		b.WriteString(fmt.Sprintf("Suggestions for %s:", m.role))
		for _, s := range planner.Suggestions(m.role) {
			b.WriteString("\n- ")
			b.WriteString(s)
		}
		m.appendLocal(session.RoleSystem, b.String())
		return true, m, nil

	case "/quit":
		m.quitting = true
		return true, m, tea.Quit

	default:
		m.appendLocal(session.RoleSystem, fmt.Sprintf("Unknown command %s. Try /help.", cmd))
		return true, m, nil
	}
}
