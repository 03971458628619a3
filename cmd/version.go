package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kzhmr/notepm-mcp-server/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetFull())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
