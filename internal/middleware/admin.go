package middleware

import (
	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/repository/interfaces"
)

// AdminMiddleware 校验当前用户是否为管理员，须在 AuthMiddleware 之后使用
func AdminMiddleware(userRepo interfaces.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)

		user, err := userRepo.FindByID(userID)
		if err != nil {
			errors.HandleError(c, err)
			c.Abort()
			return
		}
		if user == nil || user.Role != "admin" {
			errors.HandleError(c, errors.New(errors.ErrForbidden, "需要管理员权限"))
			c.Abort()
			return
		}

		c.Next()
	}
}
