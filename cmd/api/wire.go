//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改本文件后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如memory.NewUserStore）
// - Injector: 声明最终要构造的目标类型（*App）
// - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	appuser "github.com/xiebiao/userdao/internal/application/user"
	"github.com/xiebiao/userdao/internal/domain/user"
	"github.com/xiebiao/userdao/internal/infrastructure/config"
	"github.com/xiebiao/userdao/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖
// 包含：配置加载、日志、链路追踪、用户存储
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
	provideTracer,
	provideStore,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewMapper,
	provideDAO,
	provideGetter,
	provideSaver,
	provideStatusUpdater,
	provideDeleter,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewGetUserUseCase,
	appuser.NewListUsersUseCase,
	appuser.NewCreateUserUseCase,
	appuser.NewSetUserStatusUseCase,
	appuser.NewDeleteUserUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	provideGinEngine,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按与创建相反的顺序关闭存储连接和TracerProvider
//
// 依赖链：
// *App → *gin.Engine → *handler.UserHandler → *appuser.XxxUseCase
// → user.DAO → user.Store → *config.Config
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
