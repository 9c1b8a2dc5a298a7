package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
)

// RecoveryMiddleware 捕获处理链中的 panic，返回统一的内部错误响应
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("请求处理发生panic",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Stack("stack"))

				c.AbortWithStatusJSON(http.StatusInternalServerError, errors.ErrorResponse{
					Code:    errors.ErrInternal,
					Message: "服务器内部错误",
				})
			}
		}()
		c.Next()
	}
}
