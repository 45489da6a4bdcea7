package cmd

import (
	"fmt"
	"time"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/stackwatch/check-elastic-stack/internal/history"
	"github.com/stackwatch/check-elastic-stack/internal/probe"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded check results",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("history")
		service, _ := cmd.Flags().GetString("service")
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := history.Open(cmd.Context(), path)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(cmd.Context(), service, limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			age := units.HumanDuration(time.Since(e.CheckedAt))
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s %-8s %s (%s ago)\n",
				e.Service, probe.Severity(e.Severity), e.Message, age)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("history", "", "SQLite database to read")
	historyCmd.Flags().String("service", "", "Only show results for this service")
	historyCmd.Flags().Int("limit", 20, "Maximum number of results")
	historyCmd.MarkFlagRequired("history")
}
