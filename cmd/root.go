package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/itszrong/evacplan/internal/config"
	"github.com/itszrong/evacplan/internal/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "evacplan",
	Short: "Terminal client for the civilian evacuation planning service",
	Long: `evacplan talks to the UK civilian evacuation planning backend:
an AI planning assistant with borough-level context.

Examples:
  evacplan chat                        # interactive planning chat
  evacplan plan --borough newham       # borough evacuation plan + metrics
  evacplan boroughs hamlets            # fuzzy borough lookup
  evacplan sessions                    # list stored chat sessions`,
	Version:           Version,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var (
	flagAPIURL string
	flagRole   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Override the planning service base URL")
	rootCmd.PersistentFlags().StringVar(&flagRole, "role", "", "Override role (planner, responder, analyst)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(flagAPIURL, flagRole)
	return cfg, nil
}

// initThemeFromConfig applies the configured theme before any styled output.
func initThemeFromConfig(cfg *config.Config) {
	ui.InitTheme(ui.ThemeConfig{
		Primary:   cfg.Theme.Primary,
		Secondary: cfg.Theme.Secondary,
		Success:   cfg.Theme.Success,
		Error:     cfg.Theme.Error,
		Warning:   cfg.Theme.Warning,
		Muted:     cfg.Theme.Muted,
		Text:      cfg.Theme.Text,
		Spinner:   cfg.Theme.Spinner,
	})
}
