package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/internal/types"
)

// ListNodes lists the children of a folder, or the root level when no
// parent_id is given. Folders sort before files.
func ListNodes(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var q types.ListNodesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
		return
	}

	var parentID *string
	if q.ParentID != "" {
		parentID = &q.ParentID
	}

	svc := service.NewNodeService(c.Request.Context())

	nodes, err := svc.ListChildren(c.Request.Context(), user, parentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"nodes": nodes})
}

// ListStarred lists the owner's starred, non-trashed nodes.
func ListStarred(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	nodes, err := svc.ListStarred(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"nodes": nodes})
}

// RenameNode changes a node's display name.
func RenameNode(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req types.RenameNodeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	node, err := svc.Rename(c.Request.Context(), user, c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, node)
}

// ToggleStar flips a node's starred flag.
func ToggleStar(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	node, err := svc.ToggleStar(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, node)
}

// ToggleTrash moves a node to the trash or restores it.
func ToggleTrash(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	node, message, err := svc.ToggleTrash(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"node": node, "message": message})
}

// ToggleShare flips public sharing and reports the share token.
func ToggleShare(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	svc := service.NewNodeService(c.Request.Context())

	node, err := svc.ToggleShare(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := types.ShareToggleResponse{
		ID:       node.ID,
		IsPublic: node.IsPublic,
		Message:  "sharing disabled",
	}
	if node.IsPublic {
		resp.ShareToken = node.ShareToken
		resp.Message = "sharing enabled"
	}

	c.JSON(http.StatusOK, resp)
}
