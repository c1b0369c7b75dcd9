package handler

import (
	"context"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/database"
	"tierlist/backend/internal/hub"
	"tierlist/backend/internal/identity"
	"tierlist/backend/internal/steam"
)

// IdentityProvider is the sign-in surface of the identity provider.
type IdentityProvider interface {
	AuthorizeURL(provider, redirectTo, codeChallenge string) (string, error)
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*identity.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// GameSearcher looks games up in the external catalog.
type GameSearcher interface {
	Search(ctx context.Context, query string) ([]steam.Result, error)
}

// Options are the deployment settings handlers need.
type Options struct {
	OAuthProvider string
	CallbackURL   string
}

// Handler serves every route of the tier list. It holds no per-request
// state; request identity travels in auth.RequestContext.
type Handler struct {
	store    *database.Store
	identity IdentityProvider
	sessions *auth.Resolver
	search   GameSearcher
	events   *hub.Hub
	opts     Options
}

// New creates a Handler.
func New(store *database.Store, idp IdentityProvider, sessions *auth.Resolver, search GameSearcher, events *hub.Hub, opts Options) *Handler {
	return &Handler{
		store:    store,
		identity: idp,
		sessions: sessions,
		search:   search,
		events:   events,
		opts:     opts,
	}
}

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ActionResult is the outcome of a form action. Expected business failures
// are reported with Success=false rather than as errors.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// endregion
