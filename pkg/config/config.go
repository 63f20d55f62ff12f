package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/horizon"
	ConfigFileName    = "horizon.yml"
)

// Config holds all horizon-api configuration settings.
// Values come from defaults, then the config file, then environment
// variables, with later sources winning.
type Config struct {
	// DBHost is the database server host
	DBHost string `yaml:"db_host"`

	// DBPort is the database server port
	DBPort string `yaml:"db_port"`

	// DBName is the database name
	DBName string `yaml:"db_name"`

	// DBUser is the database user
	DBUser string `yaml:"db_user"`

	// DBPass is the database password
	DBPass string `yaml:"db_pass"`

	// AccessSecret is the HMAC-SHA256 signing secret for bearer tokens
	AccessSecret string `yaml:"access_secret"`

	// TokenTTL is the bearer token lifetime in seconds
	TokenTTL int `yaml:"token_ttl"`

	// AppEnv is the deployment mode ("development" enables debug logging)
	AppEnv string `yaml:"app_env"`

	// CORSAllowedOrigins is a comma-separated origin allow-list, or "*"
	CORSAllowedOrigins string `yaml:"cors_allowed_origins"`

	// WhitelistIPs is the list of caller addresses exempt from token checks
	WhitelistIPs []string `yaml:"whitelist_ips"`

	// ImageCacheDir is the directory for cached proxy images
	ImageCacheDir string `yaml:"image_cache_dir"`

	// ImageCacheTTL is the image cache lifetime in seconds
	ImageCacheTTL int `yaml:"image_cache_ttl"`

	// AllowedImageHosts are the domains the image proxy will fetch from;
	// subdomains of an entry are allowed too
	AllowedImageHosts []string `yaml:"allowed_image_hosts"`

	// BindAddress is the server bind address
	BindAddress string `yaml:"bind_address"`

	// Port is the server listen port
	Port string `yaml:"port"`

	// configFilePath is the path the file values were read from, if any
	configFilePath string
}

func newDefault() *Config {
	return &Config{
		DBHost:             "localhost",
		DBPort:             "5432",
		DBName:             "horizon",
		DBUser:             "horizon",
		DBPass:             "",
		AccessSecret:       "",
		TokenTTL:           3600,
		AppEnv:             "development",
		CORSAllowedOrigins: "*",
		WhitelistIPs:       []string{"103.103.192.24", "localhost", "127.0.0.1", "::1"},
		ImageCacheDir:      "image_cache",
		ImageCacheTTL:      86400 * 7,
		AllowedImageHosts: []string{
			"lh3.googleusercontent.com",
			"drive.google.com",
			"docs.google.com",
			"googleusercontent.com",
		},
		BindAddress: "0.0.0.0",
		Port:        "8000",
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := newDefault()

	configPath := os.Getenv("HORIZON_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(cfg.configFilePath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", cfg.configFilePath, err)
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

// Path returns the config file path in effect for this configuration.
func (c *Config) Path() string {
	return c.configFilePath
}

// Debug reports whether verbose error logging is enabled.
func (c *Config) Debug() bool {
	return c.AppEnv == "development"
}

// CORSWildcard reports whether the wildcard origin policy is configured.
func (c *Config) CORSWildcard() bool {
	return strings.TrimSpace(c.CORSAllowedOrigins) == "*"
}

// CORSOrigins returns the explicit origin allow-list. Empty when the
// wildcard policy is configured.
func (c *Config) CORSOrigins() []string {
	if c.CORSWildcard() {
		return nil
	}
	return splitAndTrim(c.CORSAllowedOrigins)
}

func (c *Config) applyEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.DBHost = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		c.DBPort = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.DBName = val
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.DBUser = val
	}
	if val := os.Getenv("DB_PASS"); val != "" {
		c.DBPass = val
	}
	if val := os.Getenv("ACCESS_SECRET"); val != "" {
		c.AccessSecret = val
	}
	if val := os.Getenv("TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
		}
	}
	if val := os.Getenv("APP_ENV"); val != "" {
		c.AppEnv = val
	}
	if val := os.Getenv("CORS_ALLOWED_ORIGINS"); val != "" {
		c.CORSAllowedOrigins = val
	}
	if val := os.Getenv("WHITELIST_IPS"); val != "" {
		c.WhitelistIPs = splitAndTrim(val)
	}
	if val := os.Getenv("IMAGE_CACHE_DIR"); val != "" {
		c.ImageCacheDir = val
	}
	if val := os.Getenv("IMAGE_CACHE_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ImageCacheTTL = i
		}
	}
	if val := os.Getenv("ALLOWED_IMAGE_HOSTS"); val != "" {
		c.AllowedImageHosts = splitAndTrim(val)
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
