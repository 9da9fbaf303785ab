package middleware

import (
	"net/http"
	"strings"

	"arklight/config"
	"arklight/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and sets AdminID and Email in
// context. This is the session gate: the persisted client-side flag is a
// UX convenience only, every protected route goes through here.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetAdminID returns the authenticated admin ID from context (must be
// used after AuthRequired).
func GetAdminID(c *gin.Context) uint {
	v, _ := c.Get("admin_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}

// GetAdminEmail returns the authenticated admin email from context.
func GetAdminEmail(c *gin.Context) string {
	v, _ := c.Get("email")
	if v == nil {
		return ""
	}
	return v.(string)
}
