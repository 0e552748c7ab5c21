package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itszrong/evacplan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, _ := config.GetConfigPath()

	fmt.Printf("config file:  %s", path)
	if !config.Exists() {
		fmt.Print(" (not present, using defaults)")
	}
	fmt.Println()
	fmt.Printf("api.base_url: %s\n", cfg.API.BaseURL)
	fmt.Printf("api.timeout:  %s\n", cfg.API.Timeout())
	fmt.Printf("role:         %s\n", cfg.Role)
	fmt.Printf("sessions:     %t\n", cfg.Sessions.Enabled)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if config.Exists() {
		path, _ := config.GetConfigPath()
		return fmt.Errorf("config already exists at %s", path)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	path, _ := config.GetConfigPath()
	fmt.Printf("Wrote %s\n", path)
	return nil
}
