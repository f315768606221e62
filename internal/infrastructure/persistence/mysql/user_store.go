package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/userdao/internal/domain/user"
	apperrors "github.com/xiebiao/userdao/pkg/errors"
)

// userStore 用户存储实现（MySQL）
// 设计说明：
// 1. 实现domain/user/store.go定义的接口
// 2. 负责Record与GORM模型之间的转换
// 3. 记录不存在转换为user.ErrRecordNotFound，其余错误包装为数据库错误
type userStore struct {
	db *gorm.DB
}

// NewUserStore 创建用户存储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewUserStore(db *gorm.DB) user.Store {
	return &userStore{db: db}
}

// FindByID 根据ID查找记录（已软删除的记录视为不存在）
func (s *userStore) FindByID(ctx context.Context, id uint64) (*user.Record, error) {
	var model UserModel
	err := s.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrRecordNotFound
		}
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeDatabaseError, "查询用户失败")
	}

	return toRecord(&model), nil
}

// FindAll 按ID升序返回全部记录
func (s *userStore) FindAll(ctx context.Context) ([]*user.Record, error) {
	var models []UserModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeDatabaseError, "查询用户列表失败")
	}

	records := make([]*user.Record, 0, len(models))
	for i := range models {
		records = append(records, toRecord(&models[i]))
	}
	return records, nil
}

// Save 插入新记录并回填自增ID
func (s *userStore) Save(ctx context.Context, record *user.Record) error {
	model := &UserModel{
		Name:     record.Name,
		LastName: record.LastName,
		Enabled:  record.Enabled,
	}

	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeDatabaseError, "创建用户失败")
	}

	record.ID = model.ID
	return nil
}

// DeleteByID 软删除（设置deleted_at）
func (s *userStore) DeleteByID(ctx context.Context, id uint64) error {
	if err := s.db.WithContext(ctx).Delete(&UserModel{}, id).Error; err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeDatabaseError, "删除用户失败")
	}
	return nil
}

// UpdateStatus 只更新enabled列
// 注意：Update单列时GORM不会因零值(false)跳过字段
func (s *userStore) UpdateStatus(ctx context.Context, id uint64, enabled bool) error {
	err := s.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", id).
		Update("enabled", enabled).Error
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeDatabaseError, "更新用户状态失败")
	}
	return nil
}

func toRecord(m *UserModel) *user.Record {
	return user.NewRecord(m.ID, m.Name, m.LastName, m.Enabled)
}
