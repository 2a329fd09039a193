package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/handle"
)

// RegisterTrashRoutes binds the recycle bin routes.
func RegisterTrashRoutes(g *gin.RouterGroup) {
	trash := g.Group("/trash")
	{
		trash.GET("", handle.ListTrash)
		trash.DELETE("", handle.EmptyTrash)
	}
}
