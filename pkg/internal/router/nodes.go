package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/handle"
)

// RegisterNodesRoutes binds the file tree routes.
func RegisterNodesRoutes(g *gin.RouterGroup) {
	nodes := g.Group("/nodes")
	{
		// Listing and creation
		nodes.GET("", handle.ListNodes)
		nodes.GET("/starred", handle.ListStarred)
		nodes.POST("/folder", handle.CreateFolder)
		nodes.POST("/upload", handle.UploadFile)

		// Single node operations
		single := nodes.Group("/:id")
		{
			single.PUT("", handle.RenameNode)
			single.DELETE("", handle.DeleteNode)
			single.POST("/star", handle.ToggleStar)
			single.POST("/trash", handle.ToggleTrash)
			single.POST("/share", handle.ToggleShare)
		}
	}
}
