package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcoelho/salesnav-outreach/internal/auth"
)

func protectedProbe(gate *auth.Gate) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return RequireSession(gate)(next)
}

func TestRequireSessionAllowsValidToken(t *testing.T) {
	gate := auth.NewGate(auth.HashPassword("hunter2"), time.Hour)
	token, ok := gate.Login("hunter2")
	require.True(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/prompts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedProbe(gate).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireSessionRejectsMissingHeader(t *testing.T) {
	gate := auth.NewGate(auth.HashPassword("hunter2"), time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/prompts", nil)
	rec := httptest.NewRecorder()
	protectedProbe(gate).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSessionRejectsMalformedHeader(t *testing.T) {
	gate := auth.NewGate(auth.HashPassword("hunter2"), time.Hour)
	token, _ := gate.Login("hunter2")

	req := httptest.NewRequest(http.MethodGet, "/prompts", nil)
	req.Header.Set("Authorization", token) // missing Bearer prefix
	rec := httptest.NewRecorder()
	protectedProbe(gate).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSessionRejectsExpiredToken(t *testing.T) {
	gate := auth.NewGate(auth.HashPassword("hunter2"), -time.Second)
	token, _ := gate.Login("hunter2")

	req := httptest.NewRequest(http.MethodGet, "/prompts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedProbe(gate).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
