package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kzhmr/notepm-mcp-server/internal/notepm/config"
	"github.com/kzhmr/notepm-mcp-server/internal/server"
)

type rootOptions struct {
	repository string
	verbose    int
}

var rootOpts = &rootOptions{}

var rootCmd = &cobra.Command{
	Use:   "notepm-mcp-server",
	Short: "An MCP server for the NotePM API",
	Long: `notepm-mcp-server exposes NotePM page search and retrieval as MCP
tools over stdio. Configuration is read from NOTEPM_* environment
variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// --repository is accepted for MCP host compatibility; the server
	// itself does not read the repository.
	rootCmd.PersistentFlags().StringVarP(&rootOpts.repository, "repository", "r", "", "Git repository path")
	rootCmd.PersistentFlags().CountVarP(&rootOpts.verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
}

// newLogger builds the process logger. Logs go to stderr; stdout
// belongs to the MCP protocol.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case rootOpts.verbose >= 2:
		level = zerolog.DebugLevel
	case rootOpts.verbose == 1:
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return server.New(cfg, newLogger()).Serve()
}
