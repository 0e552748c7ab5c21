package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/itszrong/evacplan/internal/planner"
	"github.com/itszrong/evacplan/internal/session"
	"github.com/itszrong/evacplan/internal/tui/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat with the planning assistant",
	Long: `Start an interactive chat session with the evacuation planning assistant.

Messages are persisted per session (disable with sessions.enabled: false).
Slash commands: /help, /role, /suggestions, /clear, /quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initThemeFromConfig(cfg)

	if !planner.ValidRole(cfg.Role) {
		return fmt.Errorf("unknown role %q (valid: planner, responder, analyst)", cfg.Role)
	}

	store, err := session.NewStore(session.Config{Enabled: cfg.Sessions.Enabled})
	if err != nil {
		// Degrade to an in-memory transcript rather than refusing to chat.
		fmt.Fprintf(os.Stderr, "warning: session store unavailable: %v\n", err)
		store = &session.NoopStore{}
	}
	defer store.Close()

	client := planner.NewClient(cfg.API.BaseURL, cfg.API.Timeout())

	p := tea.NewProgram(chat.New(cfg, client, store))
	_, err = p.Run()
	return err
}
