package middleware

import (
	"log"
	"net/http"
	"strings"

	"fieldflow/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderOwnerID = "X-Owner-ID"
	ownerIDKey    = "owner_id"
)

// RequireOwner scopes every request to the tenant named in X-Owner-ID.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := strings.TrimSpace(c.GetHeader(HeaderOwnerID))
		if ownerID == "" {
			log.Printf("[owner][middleware] missing owner header path=%s", c.FullPath())
			appErr := pkg.NewDomainErrorSimple("OWNER_REQUIRED", "X-Owner-ID header is required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}

func OwnerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}
