package middleware

import (
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/k3horizon/horizon-api/pkg/identity"
	"github.com/k3horizon/horizon-api/pkg/server/response"
	"github.com/k3horizon/horizon-api/pkg/token"
)

var bearerRegex = regexp.MustCompile(`(?i)^Bearer\s+(.+)$`)

// Authenticator validates bearer tokens and the caller IP allow-list.
// Allow-listed callers get a synthetic admin identity and skip token
// parsing entirely; this is a deliberate trust boundary for same-origin
// admin tooling.
type Authenticator struct {
	secret []byte
	log    *zap.Logger

	mu        sync.RWMutex
	whitelist map[string]struct{}
}

// NewAuthenticator creates the credential verifier middleware.
func NewAuthenticator(secret []byte, whitelistIPs []string, log *zap.Logger) *Authenticator {
	a := &Authenticator{
		secret: secret,
		log:    log,
	}
	a.SetWhitelist(whitelistIPs)
	return a
}

// SetWhitelist replaces the caller address allow-list. Used on config
// reload.
func (a *Authenticator) SetWhitelist(ips []string) {
	whitelist := make(map[string]struct{}, len(ips))
	for _, ip := range ips {
		whitelist[ip] = struct{}{}
	}

	a.mu.Lock()
	a.whitelist = whitelist
	a.mu.Unlock()
}

func (a *Authenticator) whitelisted(ip string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.whitelist[ip]
	return ok
}

// Middleware authenticates every request, first match terminal:
// allow-listed address, then bearer token.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := ClientIP(r); a.whitelisted(ip) {
			r = r.WithContext(identity.Set(r.Context(), identity.Whitelisted()))
			next.ServeHTTP(w, r)
			return
		}

		raw := extractBearerToken(r)
		if raw == "" {
			response.Error(w, "Unauthorized: No token provided", http.StatusUnauthorized)
			return
		}

		// Anything other than three dot-separated segments is rejected
		// before any signature work.
		if strings.Count(raw, ".") != 2 {
			response.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		claims := &token.Claims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return a.secret, nil
		},
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithPaddingAllowed(),
		)
		if err != nil {
			a.log.Debug("token rejected", zap.Error(err))
			response.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		role := claims.Role
		if role == "" {
			role = identity.RoleUser
		}

		id := &identity.Identity{Subject: claims.UserID, Role: role}
		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// ClientIP resolves the caller address: first entry of X-Forwarded-For,
// else X-Client-IP, else the transport-level peer address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if clientIP := r.Header.Get("X-Client-IP"); clientIP != "" {
		return strings.TrimSpace(clientIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	matches := bearerRegex.FindStringSubmatch(authHeader)
	if len(matches) != 2 {
		return ""
	}
	return strings.TrimSpace(matches[1])
}
