package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/userdao/internal/interface/http/handler"
	"github.com/xiebiao/userdao/internal/interface/http/middleware"
	"github.com/xiebiao/userdao/pkg/metrics"
	"github.com/xiebiao/userdao/pkg/response"
)

// New 创建Gin引擎并注册路由
// 中间件顺序：Recovery → Tracing → Logger → Metrics
// Tracing在Logger之前，日志才能带上trace_id
func New(mode string, log logrus.FieldLogger, userHandler *handler.UserHandler) *gin.Engine {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Tracing(),
		middleware.Logger(log),
		middleware.Metrics(),
	)

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档：http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id/status", userHandler.SetStatus)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return r
}
