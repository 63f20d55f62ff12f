package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/k3horizon/horizon-api/pkg/config"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the Horizon API server to be ready",
	Long: `Wait for the Horizon API server to be ready by polling the root endpoint.

This command will repeatedly check the server until it responds
successfully or the maximum number of retries is reached.

Example:
  horizonctl wait
  horizonctl wait --port 3000 --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		retries, _ := cmd.Flags().GetInt("retries")

		if port == "" {
			if cfg, err := config.Load(); err == nil {
				port = cfg.Port
			} else {
				port = "8000"
			}
		}

		if err := waitForServer(port, retries); err != nil {
			fmt.Fprintf(os.Stderr, "Server did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().StringP("port", "p", "", "Server port to check (defaults to the configured PORT)")
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForServer(port string, retries int) error {
	url := fmt.Sprintf("http://localhost:%s/", port)
	client := &http.Client{Timeout: 2 * time.Second}

	fmt.Println("Waiting for the Horizon API to be ready...")

	for i := 0; i < retries; i++ {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 300 {
				fmt.Println()
				fmt.Println("Horizon API is ready!")
				return nil
			}
		}

		fmt.Print(".")
		time.Sleep(1 * time.Second)
	}

	fmt.Println()
	return fmt.Errorf("the server is not ready after %d seconds", retries)
}
