package handle

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)

	return c, w
}

func TestCurrentUser(t *testing.T) {
	t.Run("proxy header", func(t *testing.T) {
		c, _ := newTestContext(t, "/api/v1/nodes")
		c.Request.Header.Set("X-Auth-Request-Email", "alice@example.com")

		user, err := currentUser(c)
		if err != nil {
			t.Fatalf("currentUser: %v", err)
		}

		if user != "alice@example.com" {
			t.Errorf("user = %q", user)
		}
	})

	t.Run("forwarded header fallback", func(t *testing.T) {
		c, _ := newTestContext(t, "/api/v1/nodes")
		c.Request.Header.Set("X-Forwarded-Email", "bob@example.com")

		user, err := currentUser(c)
		if err != nil {
			t.Fatalf("currentUser: %v", err)
		}

		if user != "bob@example.com" {
			t.Errorf("user = %q", user)
		}
	})

	t.Run("query fallback outside release mode", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		c, _ := newTestContext(t, "/api/v1/nodes?user=dev@example.com")

		user, err := currentUser(c)
		if err != nil {
			t.Fatalf("currentUser: %v", err)
		}

		if user != "dev@example.com" {
			t.Errorf("user = %q", user)
		}
	})

	t.Run("missing identity", func(t *testing.T) {
		c, _ := newTestContext(t, "/api/v1/nodes")

		if _, err := currentUser(c); !errors.Is(err, service.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})

	t.Run("non-email identity", func(t *testing.T) {
		c, _ := newTestContext(t, "/api/v1/nodes")
		c.Request.Header.Set("X-Auth-Request-Email", "not-an-email")

		if _, err := currentUser(c); !errors.Is(err, service.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrValidation, http.StatusBadRequest},
		{service.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{service.ErrUnsupportedType, http.StatusUnsupportedMediaType},
		{service.ErrUploadFailed, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		c, w := newTestContext(t, "/api/v1/nodes")
		writeError(c, fmt.Errorf("op: %w", tc.err))

		if w.Code != tc.want {
			t.Errorf("writeError(%v) status = %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}
