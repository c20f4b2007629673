// Package api holds the HTTP handlers of the blog.
package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all site routes. Session-aware pages are mounted
// on site, which must carry the Sessions middleware.
func RegisterRoutes(router *gin.Engine, site gin.IRoutes, recipeHandler *RecipeHandler, healthHandler *HealthHandler) {
	router.GET("/healthz", healthHandler.Check)
	recipeHandler.RegisterRoutes(site)
}
