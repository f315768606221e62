package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	_ "github.com/xiebiao/userdao/docs" // 注册Swagger文档
	"github.com/xiebiao/userdao/pkg/metrics"
)

// @title        UserDAO API
// @version      1.0
// @description  用户数据访问服务：按ID查询、列表、新增、启用/禁用、删除
// @host         localhost:8080
// @BasePath     /

// main 主程序入口
// 依赖由Wire生成的InitializeApp组装（见wire.go / wire_gen.go）
func main() {
	metrics.InitMetrics()

	app, cleanup, err := InitializeApp()
	if err != nil {
		logrus.WithError(err).Fatal("初始化应用失败")
	}
	defer cleanup()

	// SIGINT/SIGTERM触发优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		app.log.WithError(err).Error("服务异常退出")
		cleanup()
		os.Exit(1)
	}
}
