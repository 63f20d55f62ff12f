package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/k3horizon/horizon-api/pkg/config"
	"github.com/k3horizon/horizon-api/pkg/db"
	"github.com/k3horizon/horizon-api/pkg/imagecache"
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Horizon API server",
	Long: `Run the Horizon API server.

The server requires ACCESS_SECRET (or access_secret in horizon.yml) and a
reachable PostgreSQL database.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
			os.Exit(1)
		}

		// Fail fast on a missing signing secret; every protected route
		// would otherwise reject all tokens.
		if cfg.AccessSecret == "" {
			fmt.Fprintln(os.Stderr, "ACCESS_SECRET environment variable is required")
			os.Exit(1)
		}

		if bind, _ := cmd.Flags().GetString("bind-address"); bind != "" {
			cfg.BindAddress = bind
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		logger, err := newLogger(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		gormDB, err := db.Connect(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		cache, err := imagecache.New(
			cfg.ImageCacheDir,
			time.Duration(cfg.ImageCacheTTL)*time.Second,
			cfg.AllowedImageHosts,
			logger,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to initialize image cache:", err)
			os.Exit(1)
		}

		s := server.NewServer(cfg, gormDB, cache, logger)
		endpoints.RegisterAll(s)

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			stop, err := config.Watch(cfg.Path(), logger, func(updated *config.Config) {
				s.Auth.SetWhitelist(updated.WhitelistIPs)
			})
			if err != nil {
				logger.Warn("config watch unavailable", zap.Error(err))
			} else {
				defer func() { _ = stop() }()
			}
		}

		logger.Info("running server",
			zap.String("address", cfg.BindAddress),
			zap.String("port", cfg.Port),
		)
		log.Fatal(s.Start())
	},
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (overrides PORT)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides BIND_ADDRESS)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload the IP allow-list when the config file changes")
}
