package user

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mocks/mock_store.go -package=mocks

// ErrRecordNotFound 存储中不存在指定ID的记录
// 说明：这是"记录不存在"的正常结果，不是存储故障
var ErrRecordNotFound = errors.New("user record not found")

// Store 用户存储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/{memory,mysql,redis}
// 3. 便于单元测试（Mock此接口）
type Store interface {
	// FindByID 根据ID查找记录
	// 如果不存在，返回ErrRecordNotFound
	FindByID(ctx context.Context, id uint64) (*Record, error)

	// FindAll 返回全部记录（按ID升序）
	FindAll(ctx context.Context) ([]*Record, error)

	// Save 保存新记录，成功后回填record.ID
	Save(ctx context.Context, record *Record) error

	// DeleteByID 删除记录
	DeleteByID(ctx context.Context, id uint64) error

	// UpdateStatus 只更新enabled字段
	UpdateStatus(ctx context.Context, id uint64, enabled bool) error
}
