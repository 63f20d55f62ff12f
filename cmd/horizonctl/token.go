package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/k3horizon/horizon-api/pkg/config"
	"github.com/k3horizon/horizon-api/pkg/token"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token",
	Long: `Mint a signed bearer token for manual testing or service calls.

The token is signed with the configured ACCESS_SECRET and expires after
the configured TOKEN_TTL unless --ttl overrides it.

Example:
  horizonctl token --subject 1 --role admin
  horizonctl token --subject importer --ttl 300`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
			os.Exit(1)
		}
		if cfg.AccessSecret == "" {
			fmt.Fprintln(os.Stderr, "ACCESS_SECRET environment variable is required")
			os.Exit(1)
		}

		subject, _ := cmd.Flags().GetString("subject")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetInt("ttl")
		if ttl == 0 {
			ttl = cfg.TokenTTL
		}

		raw, err := token.Mint([]byte(cfg.AccessSecret), subject, role, time.Duration(ttl)*time.Second)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to mint token:", err)
			os.Exit(1)
		}

		fmt.Println(raw)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringP("subject", "s", "", "token subject (id claim)")
	tokenCmd.Flags().StringP("role", "r", "user", "token role")
	tokenCmd.Flags().IntP("ttl", "t", 0, "token lifetime in seconds (0 uses TOKEN_TTL)")
}
