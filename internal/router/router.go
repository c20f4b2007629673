package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/api"
	"github.com/vandana2004/CookingBlog/internal/assets"
	"github.com/vandana2004/CookingBlog/internal/middleware"
	"github.com/vandana2004/CookingBlog/internal/session"
	"github.com/vandana2004/CookingBlog/internal/web"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	sessions session.Store,
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
) (*gin.Engine, error) {
	gin.SetMode(config.GinMode())
	router := gin.Default()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	router.StaticFS("/static", web.Static())
	if cfg.S3Bucket == "" {
		router.Static(assets.LocalURLPrefix, cfg.LocalAssetDir)
	}

	// Pages that read or write notifications need a session
	site := router.Group("/")
	site.Use(middleware.Sessions(sessions, cfg.SessionCookie, cfg.SessionTTL, cfg.CookieSecure))

	api.RegisterRoutes(router, site, recipeHandler, healthHandler)
	return router, nil
}
