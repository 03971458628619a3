package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kzhmr/notepm-mcp-server/internal/notepm/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show current configuration settings.

Displays the effective configuration from NOTEPM_* environment
variables with the API token masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Current Configuration")
	fmt.Println("=====================")
	fmt.Println()

	if cfg.Team != "" {
		fmt.Printf("Team:            %s\n", cfg.Team)
		fmt.Printf("API base:        %s\n", cfg.APIBase)
	} else {
		fmt.Println("Team:            (not set)")
	}

	if cfg.APIToken != "" {
		fmt.Printf("API token:       %s\n", maskToken(cfg.APIToken))
	} else {
		fmt.Println("API token:       (not set)")
	}

	fmt.Printf("Max body length: %d\n", cfg.MaxBodyLength)

	fmt.Println()
	fmt.Println("Sources")
	fmt.Println("-------")

	for _, name := range []string{
		"NOTEPM_TEAM",
		"NOTEPM_API_TOKEN",
		"NOTEPM_MAX_BODY_LENGTH",
		"NOTEPM_SEARCH_DESCRIPTION",
		"NOTEPM_PAGE_DETAIL_DESCRIPTION",
	} {
		if os.Getenv(name) != "" {
			fmt.Printf("%-31s set\n", name+":")
		} else {
			fmt.Printf("%-31s (not set)\n", name+":")
		}
	}

	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
