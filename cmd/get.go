package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kzhmr/notepm-mcp-server/internal/notepm"
	"github.com/kzhmr/notepm-mcp-server/internal/notepm/config"
)

type getOptions struct {
	format string
}

var getOpts = &getOptions{}

var getCmd = &cobra.Command{
	Use:   "get <page_code>",
	Short: "Get a single NotePM page",
	Long:  `Retrieve a NotePM page by its page code and display its full content.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd.Context(), args[0], getOpts)
	},
}

func init() {
	getCmd.Flags().StringVarP(&getOpts.format, "format", "f", "text", "Output format: json, text, table")

	rootCmd.AddCommand(getCmd)
}

func runGet(ctx context.Context, pageCode string, opts *getOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	client := notepm.NewClient(cfg)

	result, err := client.GetPageDetail(ctx, notepm.DetailParams{PageCode: pageCode})
	if err != nil {
		return fmt.Errorf("failed to get page: %w", err)
	}

	if opts.format == string(notepm.FormatJSON) {
		fmt.Println(result)
		return nil
	}

	var resp notepm.DetailResponse
	if err := json.Unmarshal([]byte(result), &resp); err != nil {
		return fmt.Errorf("failed to parse page response: %w", err)
	}

	formatter := notepm.NewFormatter(notepm.OutputFormat(opts.format), os.Stdout)
	return formatter.FormatPage(&resp.Page)
}
