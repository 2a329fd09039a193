package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
)

// Usage reports the owner's storage consumption against the quota.
func Usage(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	summary, err := svc.ComputeUsage(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UsageByType reports the owner's usage grouped by content-type family.
func UsageByType(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	breakdown, err := svc.UsageByType(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
