// Package handle implements the HTTP request handlers.
package handle

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/log"
	"github.com/cotishq/cloudnest/pkg/rule"
)

// currentUser extracts the authenticated user's email. The service sits
// behind oauth2-proxy, which forwards identity in headers; outside release
// mode a ?user= query parameter works for local testing.
func currentUser(c *gin.Context) (string, error) {
	user := c.GetHeader("X-Auth-Request-Email")
	if user == "" {
		user = c.GetHeader("X-Forwarded-Email")
	}

	if user == "" && gin.Mode() != gin.ReleaseMode {
		user = c.Query("user")
	}

	user = strings.TrimSpace(user)

	if err := rule.ValidateVar(user, "required,email"); err != nil {
		return "", fmt.Errorf("%w: missing or invalid user identity", service.ErrUnauthorized)
	}

	return user, nil
}

// writeError maps a service error onto an HTTP status. Anything that is not
// a known sentinel is an internal error.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrUnsupportedType):
		status = http.StatusUnsupportedMediaType
	}

	if status == http.StatusInternalServerError {
		log.Logger().Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
