package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/handle"
)

// RegisterShareRoutes binds the unauthenticated share link route. Mounted
// outside the auth middleware; the token itself is the capability.
func RegisterShareRoutes(g *gin.RouterGroup) {
	g.GET("/share/:token", handle.ResolveShare)
}
