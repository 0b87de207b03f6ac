package middleware

import (
	"net/http"

	"creatortrust/internal/domain"
	"creatortrust/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role.
// The backend is the authority here; the web frontend only picks page
// variants by role.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if domain.Role(role.(string)) != required {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func CreatorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleCreator)
}

func BrandOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleBrand)
}
