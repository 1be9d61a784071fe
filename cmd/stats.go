package cmd

import (
	"fmt"

	"github.com/rogersnm/taskeasy/internal/board"
	"github.com/rogersnm/taskeasy/internal/markdown"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts by status and priority",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderStoreStats(st))
		return nil
	},
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return board.Run(st)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(boardCmd)
}
