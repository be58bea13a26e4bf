package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adminsvc "photogifthub/internal/service/admin"
)

const userIDKey = "userID"

// requireUser resolves the caller from the X-User-ID header. The storefront
// identifies browsers by a client-generated id; there is no session auth.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// requireAdmin checks the bearer token issued by the admin login.
func requireAdmin(admin *adminsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || !admin.Authorize(strings.TrimSpace(token)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
