package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itszrong/evacplan/internal/borough"
	"github.com/itszrong/evacplan/internal/planner"
	"github.com/itszrong/evacplan/internal/signal"
	"github.com/itszrong/evacplan/internal/ui"
)

var (
	flagBorough  string
	flagScenario string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an evacuation plan for a borough",
	Long: `Request a one-shot evacuation plan for a single borough and print the
assistant's narrative followed by the plan metrics (clearance time, fairness,
robustness, route shares).

Examples:
  evacplan plan --borough newham
  evacplan plan --borough "tower hamlets" --scenario "thames flood, 6h warning"`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&flagBorough, "borough", "b", "", "Borough to plan for (required)")
	planCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario description passed to the planner")
	planCmd.MarkFlagRequired("borough")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initThemeFromConfig(cfg)

	b, err := borough.Resolve(flagBorough)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext()
	defer cancel()

	styles := ui.NewStyles(os.Stdout)
	width := ui.TerminalWidth(100)

	fmt.Println(styles.Muted.Render(b.Summary()))
	fmt.Println()

	client := planner.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	result, err := client.Plan(ctx, planner.PlanRequest{
		Borough:  b.Name,
		Scenario: flagScenario,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan request failed: %v\n", err)
		fmt.Println(styles.RenderMessage(planner.PlanErrorMessage(b.Name), width))
		os.Exit(1)
	}

	if result.Response != "" {
		fmt.Println(styles.RenderMessage(result.Response, width))
		fmt.Println()
	}
	fmt.Println(styles.RenderBanner(result, width))
	return nil
}
