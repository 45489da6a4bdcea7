package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X github.com/stackwatch/check-elastic-stack/cmd.Version=..."
var Version = "dev"

// exitCode is the plugin exit code handed back to the supervisor.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "check-elastic-stack",
	Short: "Nagios-compatible health checks for Elastic stack services",
	Long: `Probe the health endpoint of an Elastic stack service (elasticsearch,
kibana, logstash) and report a plugin status line with a matching exit code.`,
	SilenceUsage: true,
}

// Execute runs the command tree and returns the process exit code. Command
// errors (bad flags, unrecognized service) map to the UNKNOWN exit code.
func Execute() int {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		return 3
	}
	return exitCode
}
