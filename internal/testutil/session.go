package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie returns the session cookie resolver would write for s.
func SessionCookie(t *testing.T, resolver *auth.Resolver, s *identity.Session) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if err := resolver.WriteSession(c, s); err != nil {
		t.Fatalf("failed to write session: %v", err)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.SessionCookie {
			return cookie
		}
	}
	t.Fatalf("session cookie not written")
	return nil
}

// SignIn issues tokens for userID at the fake provider and returns the
// matching session cookie.
func SignIn(t *testing.T, fake *FakeIdentityProvider, resolver *auth.Resolver, userID uuid.UUID) *http.Cookie {
	t.Helper()
	access, refresh := fake.IssueTokens(t, userID, time.Hour)
	return SessionCookie(t, resolver, &identity.Session{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	})
}
