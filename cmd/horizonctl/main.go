package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "horizonctl",
	Short: "Manage the Horizon API server",
	Long: `horizonctl runs and manages the Horizon marketing-site API server.

Configuration comes from /etc/horizon/horizon.yml (override the directory
with HORIZON_CONFIG_PATH) and environment variables, with the environment
taking precedence.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
