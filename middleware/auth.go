package middleware

import (
	"net/http"
	"strings"

	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware resolves a Bearer token to a user record and stores it
// in the gin context under "user".
func AuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unknown user"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AdminOnly rejects requests from non-admin users. Must run after
// AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(models.User)
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "admins only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
