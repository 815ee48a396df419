package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(RequireOwner())
		r.GET("/whoami", func(c *gin.Context) {
			c.String(http.StatusOK, OwnerID(c))
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("blank header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(HeaderOwnerID, "   ")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("owner in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(HeaderOwnerID, "owner-1")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "owner-1" {
			t.Fatalf("expected owner-1, got %d %q", w.Code, w.Body.String())
		}
	})
}
