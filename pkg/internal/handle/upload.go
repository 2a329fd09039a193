package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/internal/types"
	"github.com/cotishq/cloudnest/pkg/log"
	"github.com/cotishq/cloudnest/pkg/metrics"
)

// UploadFile ingests one multipart file under the "file" field. An optional
// parent_id form value places it inside a folder.
func UploadFile(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var form types.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid upload form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer func() { _ = file.Close() }()

	svc := service.NewNodeService(c.Request.Context())

	node, err := svc.UploadFile(c.Request.Context(), user, service.UploadInput{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		ParentID:    form.ParentID,
		Reader:      file,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	metrics.UploadCounter.Inc()

	c.JSON(http.StatusCreated, node)
}
