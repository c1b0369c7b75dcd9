package auth

import (
	"context"
	"log"
	"net/http"
	"time"

	"tierlist/backend/internal/identity"
	"tierlist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie holds the sealed session.
	SessionCookie = "tierlist-auth-token"
	// VerifierCookie holds the PKCE verifier during the OAuth round-trip.
	VerifierCookie = "tierlist-auth-token-code-verifier"

	sessionMaxAge  = 60 * 60 * 24 * 400
	verifierMaxAge = 60 * 10
)

// Session is the locally cached proof of sign-in.
type Session struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
	ExpiresAt    int64  `json:"expires_at"`
}

type storedSession struct {
	AccessToken  string `json:"a"`
	RefreshToken string `json:"r"`
	ExpiresAt    int64  `json:"e"`
}

// Provider is the part of the identity provider the resolver depends on.
type Provider interface {
	GetUser(ctx context.Context, accessToken string) (*identity.User, error)
	RefreshSession(ctx context.Context, refreshToken string) (*identity.Session, error)
}

// Resolver turns request cookies into a validated session and user.
type Resolver struct {
	provider  Provider
	codec     *CookieCodec
	jwtSecret string
	secure    bool
	now       func() time.Time
}

// NewResolver creates a Resolver. jwtSecret may be empty, in which case token
// signatures are only checked by the identity provider.
func NewResolver(provider Provider, codec *CookieCodec, jwtSecret string, secureCookies bool) *Resolver {
	return &Resolver{
		provider:  provider,
		codec:     codec,
		jwtSecret: jwtSecret,
		secure:    secureCookies,
		now:       time.Now,
	}
}

// Resolve returns the session and user for the request, or (nil, nil) when
// the request is unauthenticated. The access token is revalidated with the
// identity provider on every call.
func (r *Resolver) Resolve(c *gin.Context) (*Session, *identity.User) {
	raw, err := c.Cookie(SessionCookie)
	if err != nil || raw == "" {
		return nil, nil
	}

	var stored storedSession
	if err := r.codec.Open(raw, &stored); err != nil {
		r.ClearSession(c)
		return nil, nil
	}

	claims, err := jwt.ParseAccessToken(stored.AccessToken, r.jwtSecret)
	if err != nil {
		r.ClearSession(c)
		return nil, nil
	}

	ctx := c.Request.Context()
	if claims.Expired(r.now()) {
		refreshed, err := r.provider.RefreshSession(ctx, stored.RefreshToken)
		if err != nil {
			log.Printf("Session refresh failed: %v", err)
			r.ClearSession(c)
			return nil, nil
		}
		if err := r.WriteSession(c, refreshed); err != nil {
			log.Printf("Error writing refreshed session: %v", err)
		}
		stored = storedSession{
			AccessToken:  refreshed.AccessToken,
			RefreshToken: refreshed.RefreshToken,
			ExpiresAt:    refreshed.ExpiresAt,
		}
	}

	user, err := r.provider.GetUser(ctx, stored.AccessToken)
	if err != nil {
		return nil, nil
	}

	return &Session{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		ExpiresAt:    stored.ExpiresAt,
	}, user
}

// WriteSession stores s in the session cookie.
func (r *Resolver) WriteSession(c *gin.Context, s *identity.Session) error {
	value, err := r.codec.Seal(storedSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
	})
	if err != nil {
		return err
	}
	r.setCookie(c, SessionCookie, value, sessionMaxAge)
	return nil
}

// ClearSession removes the session cookie.
func (r *Resolver) ClearSession(c *gin.Context) {
	r.setCookie(c, SessionCookie, "", -1)
}

// SetCodeVerifier remembers the PKCE verifier until the callback.
func (r *Resolver) SetCodeVerifier(c *gin.Context, verifier string) error {
	value, err := r.codec.Seal(verifier)
	if err != nil {
		return err
	}
	r.setCookie(c, VerifierCookie, value, verifierMaxAge)
	return nil
}

// TakeCodeVerifier returns the stored PKCE verifier and clears it.
func (r *Resolver) TakeCodeVerifier(c *gin.Context) string {
	raw, err := c.Cookie(VerifierCookie)
	if err != nil || raw == "" {
		return ""
	}
	r.setCookie(c, VerifierCookie, "", -1)

	var verifier string
	if err := r.codec.Open(raw, &verifier); err != nil {
		return ""
	}
	return verifier
}

func (r *Resolver) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", r.secure, true)
}
