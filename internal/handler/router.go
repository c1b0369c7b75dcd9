package handler

import (
	"embed"
	"html/template"

	"tierlist/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"voted": func(votes map[uint]int, gameID uint) bool {
			_, ok := votes[gameID]
			return ok
		},
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

// NewRouter wires every tier list route onto a gin engine. Routes that need
// the caller's identity run behind auth.Middleware, which resolves the
// session afresh for each request.
func NewRouter(h *Handler, roles auth.RoleStore) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(loadTemplates())

	withSession := auth.Middleware(h.sessions, roles)

	router.GET("/", withSession, h.GetHome)
	router.GET("/auth/error", h.AuthError)

	// Form actions
	actions := router.Group("/actions")
	{
		actions.POST("/login", h.Login)
		actions.POST("/logout", withSession, h.Logout)
		actions.POST("/updateTier", withSession, h.UpdateTier)
		actions.POST("/addGame", withSession, h.AddGame)
		actions.POST("/editGame", withSession, h.EditGame)
		actions.POST("/deleteGame", withSession, h.DeleteGame)
	}

	api := router.Group("/api")
	{
		api.GET("/page", withSession, h.GetPage)
		api.POST("/vote", withSession, h.Vote)
		api.GET("/auth/callback", h.AuthCallback)
		api.GET("/steam-search", h.SearchSteam)
		api.GET("/events", h.StreamEvents)
		api.GET("/tags", h.GetTags)

		// Admin routes (protected by session and admin check)
		adminTags := api.Group("/admin/tags")
		adminTags.Use(withSession, auth.RequireAdmin())
		{
			adminTags.PUT("/:id", h.UpdateTag)
			adminTags.DELETE("/:id", h.DeleteTag)
		}
	}

	return router
}
