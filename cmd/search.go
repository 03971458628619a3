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

type searchOptions struct {
	onlyTitle       bool
	includeArchived bool
	noteCode        string
	tagName         string
	created         string
	page            int
	perPage         int
	format          string
}

var searchOpts = &searchOptions{}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search NotePM pages",
	Long: `Search for pages in NotePM and display the results.
Search words are combined with AND.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.Context(), args[0], searchOpts)
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchOpts.onlyTitle, "only-title", false, "Search titles only")
	searchCmd.Flags().BoolVar(&searchOpts.includeArchived, "include-archived", false, "Include archived pages")
	searchCmd.Flags().StringVar(&searchOpts.noteCode, "note-code", "", "Restrict the search to one note")
	searchCmd.Flags().StringVar(&searchOpts.tagName, "tag", "", "Restrict the search to pages with this tag")
	searchCmd.Flags().StringVar(&searchOpts.created, "created", "", "Filter pages by creation date")
	searchCmd.Flags().IntVar(&searchOpts.page, "page", notepm.DefaultPage, "Result page number")
	searchCmd.Flags().IntVarP(&searchOpts.perPage, "per-page", "n", notepm.DefaultPerPage, "Number of results per page")
	searchCmd.Flags().StringVarP(&searchOpts.format, "format", "f", "table", "Output format: json, text, table")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(ctx context.Context, query string, opts *searchOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	client := notepm.NewClient(cfg)

	params := notepm.SearchParams{
		Query:           query,
		OnlyTitle:       opts.onlyTitle,
		IncludeArchived: opts.includeArchived,
		NoteCode:        opts.noteCode,
		TagName:         opts.tagName,
		Created:         opts.created,
		Page:            opts.page,
		PerPage:         opts.perPage,
	}

	result, err := client.Search(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}

	if opts.format == string(notepm.FormatJSON) {
		fmt.Println(result)
		return nil
	}

	var resp notepm.SearchResponse
	if err := json.Unmarshal([]byte(result), &resp); err != nil {
		return fmt.Errorf("failed to parse search response: %w", err)
	}

	formatter := notepm.NewFormatter(notepm.OutputFormat(opts.format), os.Stdout)
	return formatter.FormatPages(resp.Pages)
}
