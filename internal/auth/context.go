package auth

import (
	"context"
	"errors"

	"tierlist/backend/internal/database"
	"tierlist/backend/internal/identity"
	"tierlist/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKey = "tierlist.request"

// RoleStore looks up application roles.
type RoleStore interface {
	ProfileRole(ctx context.Context, userID uuid.UUID) (string, error)
}

// RequestContext is the per-request identity, built once from the request's
// cookies and never shared between requests.
type RequestContext struct {
	Session *Session
	User    *identity.User

	roles RoleStore
}

// Authenticated reports whether the request carries a validated user.
func (rc *RequestContext) Authenticated() bool {
	return rc != nil && rc.User != nil
}

// IsAdmin reports whether the user's profile role is admin. A missing
// profile is not an error.
func (rc *RequestContext) IsAdmin(ctx context.Context) (bool, error) {
	if !rc.Authenticated() {
		return false, nil
	}
	role, err := rc.roles.ProfileRole(ctx, rc.User.ID)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// Middleware resolves the session of every request passing through it and
// attaches a RequestContext.
func Middleware(resolver *Resolver, roles RoleStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, user := resolver.Resolve(c)
		c.Set(contextKey, &RequestContext{Session: session, User: user, roles: roles})
		c.Next()
	}
}

// FromContext returns the RequestContext attached by Middleware. Requests
// that did not pass through it are unauthenticated.
func FromContext(c *gin.Context) *RequestContext {
	if v, ok := c.Get(contextKey); ok {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}
	return &RequestContext{}
}
