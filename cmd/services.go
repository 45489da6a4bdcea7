package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackwatch/check-elastic-stack/internal/probes"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List supported service checks",
	Run: func(cmd *cobra.Command, args []string) {
		for _, desc := range probes.GetAllDescriptions() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s %-22s %s\n", desc.Name, desc.StatusPath, desc.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
