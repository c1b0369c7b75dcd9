package handler

import (
	"log"
	"net/http"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/identity"

	"github.com/gin-gonic/gin"
)

const (
	homePath      = "/"
	authErrorPath = "/auth/error"
)

// Login godoc
// @Summary      Start OAuth sign-in
// @Description  Redirects the browser to the identity provider.
// @Tags         auth
// @Produce      json
// @Success      303  {string}  string  "Redirect"
// @Failure      200  {object}  ActionResult
// @Router       /actions/login [post]
func (h *Handler) Login(c *gin.Context) {
	verifier, err := identity.NewCodeVerifier()
	if err != nil {
		log.Printf("Error creating code verifier: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false})
		return
	}

	redirectURL, err := h.identity.AuthorizeURL(h.opts.OAuthProvider, h.opts.CallbackURL, identity.CodeChallenge(verifier))
	if err != nil {
		log.Printf("Error building sign-in URL: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false})
		return
	}
	if err := h.sessions.SetCodeVerifier(c, verifier); err != nil {
		log.Printf("Error storing code verifier: %v", err)
		c.JSON(http.StatusOK, ActionResult{Success: false})
		return
	}

	c.Redirect(http.StatusSeeOther, redirectURL)
}

// Logout godoc
// @Summary      Sign out
// @Description  Revokes the session at the identity provider, clears the cookie and redirects home.
// @Tags         auth
// @Success      303  {string}  string  "Redirect"
// @Router       /actions/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	rc := auth.FromContext(c)
	if rc.Session != nil {
		if err := h.identity.SignOut(c.Request.Context(), rc.Session.AccessToken); err != nil {
			log.Printf("Error signing out: %v", err)
		}
	}
	h.sessions.ClearSession(c)
	c.Redirect(http.StatusSeeOther, homePath)
}

// AuthCallback godoc
// @Summary      OAuth callback
// @Description  Exchanges the authorization code for a session. Redirects home on success and to the error page otherwise.
// @Tags         auth
// @Param        code query string true "Authorization code"
// @Success      303  {string}  string  "Redirect"
// @Router       /api/auth/callback [get]
func (h *Handler) AuthCallback(c *gin.Context) {
	code := c.Query("code")
	verifier := h.sessions.TakeCodeVerifier(c)
	if code == "" {
		c.Redirect(http.StatusSeeOther, authErrorPath)
		return
	}

	session, err := h.identity.ExchangeCode(c.Request.Context(), code, verifier)
	if err != nil {
		log.Printf("Error exchanging code: %v", err)
		c.Redirect(http.StatusSeeOther, authErrorPath)
		return
	}
	if err := h.sessions.WriteSession(c, session); err != nil {
		log.Printf("Error writing session: %v", err)
		c.Redirect(http.StatusSeeOther, authErrorPath)
		return
	}

	c.Redirect(http.StatusSeeOther, homePath)
}

// AuthError renders the sign-in failure page.
func (h *Handler) AuthError(c *gin.Context) {
	c.HTML(http.StatusOK, "auth_error.tmpl", nil)
}
