package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/internal/types"
	"github.com/cotishq/cloudnest/pkg/log"
)

// CreateFolder creates a folder, optionally inside an existing one.
func CreateFolder(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req types.CreateFolderRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid create folder request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	svc := service.NewNodeService(c.Request.Context())

	node, err := svc.CreateFolder(c.Request.Context(), user, req.Name, req.ParentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, node)
}
