package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"tierlist/backend/pkg/jwt"

	"github.com/google/uuid"
)

// FakeIdentityProvider emulates the identity provider endpoints used by the
// service: pkce/refresh token grants, user lookup and logout.
type FakeIdentityProvider struct {
	Server *httptest.Server
	Secret string

	mu       sync.Mutex
	codes    map[string]uuid.UUID
	refresh  map[string]uuid.UUID
	revoked  map[string]bool
	userHits int
}

// NewFakeIdentityProvider starts the fake provider; it is closed with t.
func NewFakeIdentityProvider(t *testing.T) *FakeIdentityProvider {
	t.Helper()
	f := &FakeIdentityProvider{
		Secret:  "test-jwt-secret",
		codes:   make(map[string]uuid.UUID),
		refresh: make(map[string]uuid.UUID),
		revoked: make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/token", f.handleToken)
	mux.HandleFunc("GET /auth/v1/user", f.handleUser)
	mux.HandleFunc("POST /auth/v1/logout", f.handleLogout)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the provider base URL.
func (f *FakeIdentityProvider) URL() string { return f.Server.URL }

// AddCode registers an authorization code that signs in userID.
func (f *FakeIdentityProvider) AddCode(code string, userID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[code] = userID
}

// IssueTokens returns an access token valid for ttl and a refresh token for userID.
func (f *FakeIdentityProvider) IssueTokens(t *testing.T, userID uuid.UUID, ttl time.Duration) (string, string) {
	t.Helper()
	access, refresh, err := f.issue(userID, ttl)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return access, refresh
}

// Revoke makes the provider reject accessToken on user lookup.
func (f *FakeIdentityProvider) Revoke(accessToken string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[accessToken] = true
}

// UserLookups returns how many times the user endpoint was called.
func (f *FakeIdentityProvider) UserLookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userHits
}

func (f *FakeIdentityProvider) issue(userID uuid.UUID, ttl time.Duration) (string, string, error) {
	access, err := jwt.GenerateToken(userID.String(), userID.String()+"@example.com", f.Secret, ttl)
	if err != nil {
		return "", "", err
	}
	refresh := uuid.NewString()
	f.mu.Lock()
	f.refresh[refresh] = userID
	f.mu.Unlock()
	return access, refresh, nil
}

func (f *FakeIdentityProvider) handleToken(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "bad body"})
		return
	}

	var (
		userID uuid.UUID
		ok     bool
	)
	f.mu.Lock()
	switch r.URL.Query().Get("grant_type") {
	case "pkce":
		userID, ok = f.codes[body["auth_code"]]
		ok = ok && body["code_verifier"] != ""
		delete(f.codes, body["auth_code"])
	case "refresh_token":
		userID, ok = f.refresh[body["refresh_token"]]
		delete(f.refresh, body["refresh_token"])
	}
	f.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant", "error_description": "Invalid grant"})
		return
	}

	access, refresh, err := f.issue(userID, time.Hour)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"msg": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
		"token_type":    "bearer",
		"expires_in":    3600,
		"user":          map[string]any{"id": userID, "email": userID.String() + "@example.com"},
	})
}

func (f *FakeIdentityProvider) handleUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.userHits++
	f.mu.Unlock()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	f.mu.Lock()
	revoked := f.revoked[token]
	f.mu.Unlock()

	claims, err := jwt.ParseAccessToken(token, f.Secret)
	if revoked || err != nil || claims.Expired(time.Now()) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "invalid JWT"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":            claims.Subject,
		"email":         claims.Email,
		"role":          "authenticated",
		"user_metadata": map[string]any{"nickname": "tester"},
	})
}

func (f *FakeIdentityProvider) handleLogout(w http.ResponseWriter, r *http.Request) {
	f.Revoke(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
