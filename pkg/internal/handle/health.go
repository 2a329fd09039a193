package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/configs"
	ctxPkg "github.com/cotishq/cloudnest/pkg/context"
)

// Health pings the database and the blob store.
func Health(c *gin.Context) {
	mgr := ctxPkg.GetManager(c.Request.Context())
	if mgr == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": "storage not initialized"})
		return
	}

	if err := mgr.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"app":     configs.AppName,
		"version": configs.AppVersion,
	})
}
