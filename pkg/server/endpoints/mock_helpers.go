package endpoints

import (
	"os"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/k3horizon/horizon-api/pkg/config"
	"github.com/k3horizon/horizon-api/pkg/imagecache"
	"github.com/k3horizon/horizon-api/pkg/server"
)

// MockSecret signs the tokens used against mock test servers.
const MockSecret = "test-secret"

// NewMockTestServer creates a server instance with a mocked database
// and all endpoints registered, for unit testing.
// Returns the server, sqlmock instance, and any error.
func NewMockTestServer(allowedImageHosts ...string) (*server.Server, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, err
	}

	cacheDir, err := os.MkdirTemp("", "imagecache-test-")
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, err
	}

	cache, err := imagecache.New(cacheDir, time.Hour, allowedImageHosts, zap.NewNop())
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, err
	}

	cfg := &config.Config{
		AccessSecret:       MockSecret,
		AppEnv:             "test",
		CORSAllowedOrigins: "*",
		BindAddress:        "127.0.0.1",
		Port:               "0",
	}

	s := server.NewServer(cfg, gormDB, cache, zap.NewNop())
	RegisterAll(s)

	return s, mock, nil
}
