package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"tierlist/backend/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieNamed(w interface{ Result() *http.Response }, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin_RedirectsToProvider(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/actions/login", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/auth/v1/authorize", location.Path)
	assert.Equal(t, "twitch", location.Query().Get("provider"))
	assert.Equal(t, "http://localhost:8080/api/auth/callback", location.Query().Get("redirect_to"))
	assert.NotEmpty(t, location.Query().Get("code_challenge"))
	assert.NotNil(t, cookieNamed(w, auth.VerifierCookie))
}

func TestAuthCallback_MissingCode(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/api/auth/callback")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/error", w.Header().Get("Location"))
	assert.Nil(t, cookieNamed(w, auth.SessionCookie))
}

func TestAuthCallback_InvalidCode(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/api/auth/callback?code=nope")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/error", w.Header().Get("Location"))
}

func TestSignInRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	env.fake.AddCode("valid-code", userID)

	login := env.postForm("/actions/login", url.Values{})
	require.Equal(t, http.StatusSeeOther, login.Code)
	verifier := cookieNamed(login, auth.VerifierCookie)
	require.NotNil(t, verifier)

	w := env.get("/api/auth/callback?code=valid-code", verifier)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	session := cookieNamed(w, auth.SessionCookie)
	require.NotNil(t, session)

	page := env.get("/api/page", session)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), userID.String())

	logout := env.postForm("/actions/logout", url.Values{}, session)
	require.Equal(t, http.StatusSeeOther, logout.Code)
	assert.Equal(t, "/", logout.Header().Get("Location"))
	cleared := cookieNamed(logout, auth.SessionCookie)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)

	// The provider revoked the token, so the old cookie no longer signs in.
	page = env.get("/api/page", session)
	require.Equal(t, http.StatusOK, page.Code)
	assert.NotContains(t, page.Body.String(), userID.String())
}

func TestAuthErrorPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/auth/error")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sign-in failed")
}
