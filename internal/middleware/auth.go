package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/util"
)

const userIDKey = "user_id"

func tokenFromHeader(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// AuthMiddleware 校验JWT令牌，失败时中断请求。已登出的令牌同样拒绝。
func AuthMiddleware(blacklist *util.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromHeader(c)
		if token == "" {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "缺少认证令牌"))
			c.Abort()
			return
		}

		if blacklist != nil && blacklist.Contains(token) {
			errors.HandleError(c, errors.New(errors.ErrInvalidToken, "令牌已失效"))
			c.Abort()
			return
		}

		userID, err := util.ValidateToken(token)
		if err != nil {
			errors.HandleError(c, errors.Wrap(errors.ErrInvalidToken, "无效的认证令牌", err))
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware 尝试解析令牌但不强制要求。
// 匿名请求照常通过，只是后续处理拿不到查看者身份。
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromHeader(c)
		if token != "" {
			if userID, err := util.ValidateToken(token); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID 返回已认证的用户ID，仅在 AuthMiddleware 之后可用
func CurrentUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

// ViewerID 返回可选的查看者身份，匿名请求返回 nil
func ViewerID(c *gin.Context) *int {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(int); ok {
			return &id
		}
	}
	return nil
}
