package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/context"
	"github.com/cotishq/cloudnest/pkg/internal/storage"
)

// StorageMiddleware injects the storage manager into each request context so
// handlers can construct services from it.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
