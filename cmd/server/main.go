package main

import (
	"fmt"
	"log"
	"net/http"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/config"
	"tierlist/backend/internal/database"
	"tierlist/backend/internal/handler"
	"tierlist/backend/internal/hub"
	"tierlist/backend/internal/identity"
	"tierlist/backend/internal/steam"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "tierlist/backend/docs" // Registers the API spec with swag

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Game Tier List API
// @version         1.0
// @description     Community game tier list with OAuth sign-in, admin curation and upvotes.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}
	store := database.NewStore(db)

	idp := identity.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	sessions := auth.NewResolver(idp, auth.NewCookieCodec(cfg.SessionSecret), cfg.JWTSecret, cfg.SecureCookies())

	h := handler.New(store, idp, sessions, steam.NewClient(cfg.SteamSearchURL, nil), hub.NewHub(), handler.Options{
		OAuthProvider: cfg.OAuthProvider,
		CallbackURL:   cfg.CallbackURL(),
	})

	router := handler.NewRouter(h, store)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	fmt.Printf("Server is running on :%s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
