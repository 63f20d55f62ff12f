package integration

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migrations "github.com/k3horizon/horizon-api/db"
	"github.com/k3horizon/horizon-api/pkg/config"
	"github.com/k3horizon/horizon-api/pkg/imagecache"
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/endpoints"
)

// AccessSecret signs the bearer tokens used by the integration suite.
const AccessSecret = "integration-secret"

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB         *gorm.DB
	Container  testcontainers.Container
	Server     *httptest.Server
	HTTPClient *http.Client

	cacheDir string
}

// NewTestContext starts a PostgreSQL testcontainer, runs the embedded
// migrations against it and serves the full API in-process.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("horizon_test"),
		tcpostgres.WithUsername("horizon"),
		tcpostgres.WithPassword("horizon"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://horizon:horizon@%s:%s/horizon_test?sslmode=disable", host, port.Port())

	if err := runMigrations(connStr); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	cacheDir, err := os.MkdirTemp("", "horizon-integration-cache-")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}

	cache, err := imagecache.New(cacheDir, time.Hour, nil, zap.NewNop())
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}

	cfg := &config.Config{
		AccessSecret:       AccessSecret,
		AppEnv:             "test",
		CORSAllowedOrigins: "*",
		BindAddress:        "127.0.0.1",
		Port:               "0",
	}

	s := server.NewServer(cfg, db, cache, zap.NewNop())
	endpoints.RegisterAll(s)

	return &TestContext{
		DB:         db,
		Container:  pgContainer,
		Server:     httptest.NewServer(s.Handler()),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		cacheDir:   cacheDir,
	}, nil
}

// Close tears down the server, the cache directory and the container.
func (tc *TestContext) Close(ctx context.Context) {
	if tc.Server != nil {
		tc.Server.Close()
	}
	if tc.cacheDir != "" {
		_ = os.RemoveAll(tc.cacheDir)
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}

func runMigrations(dbURL string) error {
	migrationsFS, err := fs.Sub(migrations.Migrations, "migrations")
	if err != nil {
		return err
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dbURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
