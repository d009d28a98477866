package middleware

import (
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware loads the authenticated user and rejects non-admins.
// Must run after AuthMiddleware.
func AdminMiddleware(userRepo *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
		if err != nil {
			utils.InternalError(c, "Failed to verify admin access")
			c.Abort()
			return
		}
		if user == nil || !user.IsAdmin {
			utils.TrackError("auth", "admin_access_denied")
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Set("admin_role", user.AdminRole)
		c.Next()
	}
}
