package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/handle"
)

// RegisterStatsRoutes binds the storage accounting routes.
func RegisterStatsRoutes(g *gin.RouterGroup) {
	stats := g.Group("/stats")
	{
		stats.GET("/usage", handle.Usage)
		stats.GET("/usage/types", handle.UsageByType)
	}
}
