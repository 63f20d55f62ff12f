package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownResourceIsNotFound(t *testing.T) {
	s, _, err := NewMockTestServer()
	require.NoError(t, err)

	rec := doJSON(t, s.Router, http.MethodGet, "/nope", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Endpoint not found: /nope", env.Error)
}

func TestUnsupportedMethodOnMatchedResource(t *testing.T) {
	s, _, err := NewMockTestServer()
	require.NoError(t, err)

	rec := doJSON(t, s.Router, http.MethodPatch, "/articles/5", `{}`, true)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Method not allowed", env.Error)
}

func TestRootDirectoryIsUnauthenticated(t *testing.T) {
	s, _, err := NewMockTestServer()
	require.NoError(t, err)

	rec := doJSON(t, s.Router, http.MethodGet, "/", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "/articles")
	assert.Contains(t, string(env.Data), "/imageProxy")
}

func TestPreflightShortCircuits(t *testing.T) {
	s, _, err := NewMockTestServer()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/articles", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	// Wildcard policy echoes the request origin.
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}
