package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/handle"
)

// RegisterHealthCheckRoute binds the health probe.
func RegisterHealthCheckRoute(g *gin.RouterGroup) {
	g.GET("/health", handle.Health)
}
