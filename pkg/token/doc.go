// Package token mints the HS256 bearer tokens the API accepts. Tokens
// are normally created by an external issuer; this package exists for
// the horizonctl token command and for tests.
package token
