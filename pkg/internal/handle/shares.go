package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
)

// ResolveShare serves the public view of a shared node. No authentication:
// the token is the capability.
func ResolveShare(c *gin.Context) {
	svc := service.NewNodeService(c.Request.Context())

	shared, err := svc.ResolveShared(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shared)
}
