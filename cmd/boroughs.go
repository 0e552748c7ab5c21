package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itszrong/evacplan/internal/borough"
	"github.com/itszrong/evacplan/internal/ui"
)

var boroughsCmd = &cobra.Command{
	Use:   "boroughs [query]",
	Short: "List boroughs with planning context",
	Long: `List the boroughs the planner has context for. With a query argument,
fuzzy-match borough names instead of listing everything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoroughs,
}

func init() {
	rootCmd.AddCommand(boroughsCmd)
}

func runBoroughs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initThemeFromConfig(cfg)
	styles := ui.NewStyles(os.Stdout)

	list := borough.All()
	if len(args) == 1 {
		list = borough.Search(args[0])
		if len(list) == 0 {
			return fmt.Errorf("no borough matches %q", args[0])
		}
	}

	for _, b := range list {
		fmt.Printf("%s  %s\n",
			styles.Bold.Render(b.Name),
			styles.Muted.Render(fmt.Sprintf("pop. %d · flood risk %s", b.Population, b.FloodRisk)))
		fmt.Printf("  hubs: %s\n", strings.Join(b.Hubs, ", "))
		if b.Notes != "" {
			fmt.Printf("  %s\n", styles.Muted.Render(b.Notes))
		}
	}
	return nil
}
