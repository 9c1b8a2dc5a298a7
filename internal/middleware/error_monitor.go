package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
)

// ErrorMonitorMiddleware 收集请求链中产生的错误并记入分析器
func ErrorMonitorMiddleware(analytics *errors.ErrorAnalytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			traced := errors.NewTracedError(ginErr.Err, errors.ErrorContext{
				UserID: c.GetInt(userIDKey),
				Path:   c.FullPath(),
				Method: c.Request.Method,
			})
			traced.AddLabel("client_ip", c.ClientIP())
			analytics.Record(traced)

			zap.L().Warn("请求返回错误",
				zap.String("path", c.FullPath()),
				zap.String("method", c.Request.Method),
				zap.Error(ginErr.Err))
		}
	}
}
