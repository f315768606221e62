package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xiebiao/userdao/pkg/logger"
	"github.com/xiebiao/userdao/pkg/response"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// 超过该耗时记录慢请求警告
const slowRequestThreshold = 3 * time.Second

// Logger 请求日志中间件
// 1. 沿用上游传入的X-Request-ID，没有则生成UUID
// 2. 把带request_id的日志Entry放进gin.Context，供response.Error记录底层错误
// 3. 请求结束后输出方法、路径、状态码、耗时
func Logger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		entry := logger.WithContext(c.Request.Context(), log, "http").
			WithField("request_id", requestID)
		c.Set(response.LoggerKey, entry)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   latency.String(),
			"client_ip": c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		entry = entry.WithFields(fields)

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request completed")
		case latency > slowRequestThreshold:
			entry.Warn("slow request")
		default:
			entry.Info("request completed")
		}
	}
}
