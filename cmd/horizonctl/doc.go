// Command horizonctl runs and manages the Horizon marketing-site API.
//
// # Quick Start
//
//	# Run database migrations
//	horizonctl db migrate
//
//	# Start the server (migrations run on startup unless --no-migrate)
//	horizonctl server
//
//	# Mint a bearer token for manual testing
//	horizonctl token --subject 1 --role admin
//
// # Environment Variables
//
//   - DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASS: PostgreSQL connection
//   - ACCESS_SECRET: HMAC-SHA256 signing secret for bearer tokens
//   - TOKEN_TTL: bearer token lifetime in seconds
//   - APP_ENV: deployment mode ("development" enables debug logging)
//   - CORS_ALLOWED_ORIGINS: comma-separated origin allow-list, or "*"
//   - WHITELIST_IPS: comma-separated caller addresses exempt from tokens
//   - IMAGE_CACHE_DIR, IMAGE_CACHE_TTL, ALLOWED_IMAGE_HOSTS: image proxy
//   - BIND_ADDRESS, PORT: server listen address
//   - HORIZON_CONFIG_PATH: directory holding horizon.yml
package main
