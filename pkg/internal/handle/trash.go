package handle

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/internal/types"
	"github.com/cotishq/cloudnest/pkg/metrics"
)

// ListTrash lists the owner's trashed nodes.
func ListTrash(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	nodes, err := svc.ListTrashed(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"nodes": nodes})
}

// DeleteNode permanently deletes a node; folders go recursively.
func DeleteNode(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	id := c.Param("id")

	removed, err := svc.PermanentDelete(c.Request.Context(), user, id)
	if err != nil {
		writeError(c, err)
		return
	}

	metrics.DeleteCounter.Add(float64(removed))

	c.JSON(http.StatusOK, types.DeleteNodeResponse{
		ID:      id,
		Message: fmt.Sprintf("%d node(s) permanently deleted", removed),
	})
}

// EmptyTrash permanently deletes everything in the owner's trash.
func EmptyTrash(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	deleted, err := svc.EmptyTrash(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	metrics.DeleteCounter.Add(float64(deleted))

	c.JSON(http.StatusOK, types.TrashSweepResponse{
		DeletedCount: deleted,
		Message:      "trash emptied",
	})
}
