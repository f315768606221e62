package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/xiebiao/userdao/internal/domain/user"
	"github.com/xiebiao/userdao/internal/infrastructure/config"
	"github.com/xiebiao/userdao/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/userdao/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/userdao/internal/infrastructure/persistence/redis"
	storetracing "github.com/xiebiao/userdao/internal/infrastructure/tracing"
	"github.com/xiebiao/userdao/internal/interface/http/handler"
	"github.com/xiebiao/userdao/internal/interface/http/router"
	"github.com/xiebiao/userdao/pkg/logger"
	"github.com/xiebiao/userdao/pkg/tracing"
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 构造函数参数需要从Config中提取时，编写自定义Provider

// provideLogger 根据log配置创建logrus.Logger
func provideLogger(cfg *config.Config) (*logrus.Logger, error) {
	return logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// tracerReady 标记tracer已初始化，newApp依赖它以确定初始化顺序
type tracerReady struct{}

// provideTracer tracing.enabled时初始化OTLP导出器，cleanup中flush并关闭
// 未启用时使用otel默认的noop Provider
func provideTracer(cfg *config.Config, log logrus.FieldLogger) (tracerReady, func(), error) {
	if !cfg.Tracing.Enabled {
		return tracerReady{}, func() {}, nil
	}

	shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return tracerReady{}, nil, err
	}
	log.WithField("endpoint", cfg.Tracing.Endpoint).Info("链路追踪已启用")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Warn("关闭TracerProvider失败")
		}
	}
	return tracerReady{}, cleanup, nil
}

// provideStore 按store.driver选择存储实现，并套上追踪装饰器
// 返回的cleanup负责关闭数据库/Redis连接
func provideStore(cfg *config.Config, log logrus.FieldLogger) (user.Store, func(), error) {
	var (
		store   user.Store
		cleanup = func() {}
	)

	switch cfg.Store.Driver {
	case config.DriverMySQL:
		db, err := mysql.NewDB(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		store = mysql.NewUserStore(db)
		cleanup = func() {
			if err := mysql.Close(db); err != nil {
				log.WithError(err).Warn("关闭数据库连接失败")
			}
		}
	case config.DriverRedis:
		client, err := redis.NewClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		store = redis.NewUserStore(client, cfg.Redis.KeyPrefix)
		cleanup = func() {
			if err := client.Close(); err != nil {
				log.WithError(err).Warn("关闭Redis连接失败")
			}
		}
	default:
		store = memory.NewUserStore()
	}

	log.WithField("driver", cfg.Store.Driver).Info("用户存储已就绪")
	return storetracing.NewStoreTracer(store, cfg.Store.Driver), cleanup, nil
}

// provideDAO 组装DAO
func provideDAO(store user.Store, mapper user.Mapper, log logrus.FieldLogger) user.DAO {
	return user.NewDAO(store, mapper, log)
}

// 用例只依赖DAO的角色接口
func provideGetter(d user.DAO) user.Getter               { return d }
func provideSaver(d user.DAO) user.Saver                 { return d }
func provideStatusUpdater(d user.DAO) user.StatusUpdater { return d }
func provideDeleter(d user.DAO) user.Deleter             { return d }

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(cfg *config.Config, log logrus.FieldLogger, userHandler *handler.UserHandler) *gin.Engine {
	return router.New(cfg.Server.Mode, log, userHandler)
}
