// Package router binds paths to handlers on the gin engine. Handler
// implementations live in pkg/internal/handle; this package only wires them.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes binds the authenticated API surface onto one group,
// normally mounted at /api/v1.
func RegisterAPIRoutes(g *gin.RouterGroup) {
	RegisterNodesRoutes(g)
	RegisterTrashRoutes(g)
	RegisterStatsRoutes(g)
}
