package user

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/xiebiao/userdao/pkg/errors"
	"github.com/xiebiao/userdao/pkg/logger"
	"github.com/xiebiao/userdao/pkg/metrics"
)

// DataError的固定文案
const (
	msgSaveFailed   = "The user could not be saved"
	msgUpdateFailed = "The user could not be updated"
	msgDeleteFailed = "The user could not be deleted"
)

// 操作名（日志与指标标签）
const (
	opByID      = "by_id"
	opGetAll    = "get_all"
	opPersist   = "persist"
	opSetStatus = "set_status"
	opDelete    = "delete"
)

// Getter 读操作
type Getter interface {
	// ByID 查询用户，不存在时返回apperrors.ErrUserNotFound
	ByID(ctx context.Context, id uint64) (User, error)

	// GetAll 返回全部用户，保持存储返回的顺序
	GetAll(ctx context.Context) ([]User, error)
}

// Saver 新增
type Saver interface {
	Persist(ctx context.Context, u User) error
}

// StatusUpdater 启用/禁用
type StatusUpdater interface {
	SetStatus(ctx context.Context, id uint64, enabled bool) error
}

// Deleter 删除
type Deleter interface {
	Delete(ctx context.Context, id uint64) error
}

// DAO 用户数据访问门面
// 设计说明：
// 1. 编排Store与Mapper，是User与Record之间唯一的转换者
// 2. 错误转换只发生在这一层：ByID → NotFound；写操作 → DataError
// 3. SetStatus/Delete先查后改，两步之间不保证原子性
type DAO interface {
	Getter
	Saver
	StatusUpdater
	Deleter
}

type dao struct {
	store  Store
	mapper Mapper
	log    logrus.FieldLogger
}

// NewDAO 创建用户DAO，log为nil时丢弃日志
func NewDAO(store Store, mapper Mapper, log logrus.FieldLogger) DAO {
	if log == nil {
		log = logger.Discard()
	}
	return &dao{
		store:  store,
		mapper: mapper,
		log:    log,
	}
}

// ByID 根据ID查询用户
// 记录不存在时不会调用Mapper；其他存储错误原样返回
func (d *dao) ByID(ctx context.Context, id uint64) (User, error) {
	start := time.Now()

	record, err := d.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			err = apperrors.ErrUserNotFound
		}
		d.finish(ctx, opByID, start, err, logrus.Fields{"user.id": id})
		return User{}, err
	}

	u := d.mapper.ToTarget(record)
	d.finish(ctx, opByID, start, nil, logrus.Fields{"user.id": id})
	return u, nil
}

// GetAll 查询全部用户
func (d *dao) GetAll(ctx context.Context) ([]User, error) {
	start := time.Now()

	records, err := d.store.FindAll(ctx)
	if err != nil {
		d.finish(ctx, opGetAll, start, err, nil)
		return nil, err
	}

	users := make([]User, 0, len(records))
	for _, record := range records {
		users = append(users, d.mapper.ToTarget(record))
	}

	d.finish(ctx, opGetAll, start, nil, logrus.Fields{"users.count": len(users)})
	return users, nil
}

// Persist 保存新用户
// 新记录不带ID，由存储分配
func (d *dao) Persist(ctx context.Context, u User) error {
	start := time.Now()

	record := NewRecordBuilder().
		Name(u.Name()).
		LastName(u.LastName()).
		Enabled(u.IsEnabled()).
		Build()

	if err := d.store.Save(ctx, record); err != nil {
		err = apperrors.WrapWithCode(err, apperrors.ErrCodeUserData, msgSaveFailed)
		d.finish(ctx, opPersist, start, err, nil)
		return err
	}

	d.finish(ctx, opPersist, start, nil, logrus.Fields{"user.id": record.ID})
	return nil
}

// SetStatus 更新启用状态
// 用户不存在时静默返回nil
func (d *dao) SetStatus(ctx context.Context, id uint64, enabled bool) error {
	start := time.Now()
	fields := logrus.Fields{"user.id": id, "user.enabled": enabled}

	found, err := d.exists(ctx, id)
	if err == nil && found {
		err = d.store.UpdateStatus(ctx, id, enabled)
	}
	if err != nil {
		err = apperrors.WrapWithCode(err, apperrors.ErrCodeUserData, msgUpdateFailed)
	}

	fields["user.found"] = found
	d.finish(ctx, opSetStatus, start, err, fields)
	return err
}

// Delete 删除用户
// 用户不存在时静默返回nil
func (d *dao) Delete(ctx context.Context, id uint64) error {
	start := time.Now()

	found, err := d.exists(ctx, id)
	if err == nil && found {
		err = d.store.DeleteByID(ctx, id)
	}
	if err != nil {
		err = apperrors.WrapWithCode(err, apperrors.ErrCodeUserData, msgDeleteFailed)
	}

	d.finish(ctx, opDelete, start, err, logrus.Fields{"user.id": id, "user.found": found})
	return err
}

// exists 把ErrRecordNotFound视为"不存在"，其余错误视为存储故障
func (d *dao) exists(ctx context.Context, id uint64) (bool, error) {
	_, err := d.store.FindByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

// finish 记录日志与指标，不影响返回值
func (d *dao) finish(ctx context.Context, op string, start time.Time, err error, fields logrus.Fields) {
	elapsed := time.Since(start)

	entry := logger.WithContext(ctx, d.log, "dao").
		WithField("operation", op).
		WithField("elapsed", elapsed)
	if fields != nil {
		entry = entry.WithFields(fields)
	}

	switch {
	case err == nil:
		metrics.ObserveUserOperation(op, metrics.ResultSuccess, elapsed)
		entry.Debug("user operation succeeded")
	case errors.Is(err, apperrors.ErrUserNotFound):
		metrics.ObserveUserOperation(op, metrics.ResultNotFound, elapsed)
		entry.Info("user not found")
	default:
		metrics.ObserveUserOperation(op, metrics.ResultError, elapsed)
		entry.WithError(err).Error("user operation failed")
	}
}
