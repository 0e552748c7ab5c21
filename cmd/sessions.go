package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itszrong/evacplan/internal/session"
	"github.com/itszrong/evacplan/internal/signal"
	"github.com/itszrong/evacplan/internal/ui"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored chat sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print a stored session transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a stored session and its messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// shortID returns a display-length prefix of a session ID. IDs are
// normally UUIDs but the database accepts any non-empty string.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openStore() (session.Store, error) {
	store, err := session.NewSQLiteStore()
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initThemeFromConfig(cfg)
	styles := ui.NewStyles(os.Stdout)

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext()
	defer cancel()

	sessions, err := store.List(ctx, 50)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No stored sessions. Start one with: evacplan chat")
		return nil
	}

	for _, s := range sessions {
		summary := s.Summary
		if summary == "" {
			summary = "(empty session)"
		}
		fmt.Printf("%s  %s\n", styles.Bold.Render(shortID(s.ID)), summary)
		meta := fmt.Sprintf("%d messages · role %s · %s", s.MessageCount, s.Role, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
		if s.Borough != "" {
			meta += " · " + s.Borough
		}
		fmt.Printf("          %s\n", styles.Muted.Render(meta))
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initThemeFromConfig(cfg)
	styles := ui.NewStyles(os.Stdout)
	width := ui.TerminalWidth(100)

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext()
	defer cancel()

	id, err := resolveSessionID(ctx, store, args[0])
	if err != nil {
		return err
	}

	messages, err := store.Messages(ctx, id)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		switch msg.Role {
		case session.RoleUser:
			fmt.Println(styles.UserLabel.Render("You"))
		case session.RoleAssistant:
			fmt.Println(styles.AssistantLabel.Render("Planner"))
		default:
			fmt.Println(styles.Muted.Render("·"))
		}
		fmt.Println(styles.RenderMessage(msg.Content, width))
		fmt.Println()
	}
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext()
	defer cancel()

	id, err := resolveSessionID(ctx, store, args[0])
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s\n", shortID(id))
	return nil
}

// resolveSessionID accepts a full session ID or an unambiguous prefix.
func resolveSessionID(ctx context.Context, store session.Store, ref string) (string, error) {
	if _, err := store.Get(ctx, ref); err == nil {
		return ref, nil
	}
	sessions, err := store.List(ctx, 0)
	if err != nil {
		return "", err
	}
	var match string
	for _, s := range sessions {
		if strings.HasPrefix(s.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("session prefix %q is ambiguous", ref)
			}
			match = s.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no session matches %q", ref)
	}
	return match, nil
}
