package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/userdao/internal/domain/user"
	apperrors "github.com/xiebiao/userdao/pkg/errors"
)

// Key设计：
//   - {prefix}user:{id}  Hash，字段name、last_name、enabled
//   - {prefix}user:seq   自增ID序列（INCR）
//   - {prefix}users      Sorted Set，score=id，用于按ID升序遍历
const (
	fieldName     = "name"
	fieldLastName = "last_name"
	fieldEnabled  = "enabled"
)

// userStore 用户存储实现（Redis）
type userStore struct {
	client redis.UniversalClient
	prefix string
}

// NewUserStore 创建用户存储
// prefix用于多个应用共享同一个Redis库时隔离Key
func NewUserStore(client redis.UniversalClient, prefix string) user.Store {
	return &userStore{client: client, prefix: prefix}
}

func (s *userStore) userKey(id uint64) string {
	return s.prefix + "user:" + strconv.FormatUint(id, 10)
}

func (s *userStore) seqKey() string {
	return s.prefix + "user:seq"
}

func (s *userStore) indexKey() string {
	return s.prefix + "users"
}

func (s *userStore) FindByID(ctx context.Context, id uint64) (*user.Record, error) {
	fields, err := s.client.HGetAll(ctx, s.userKey(id)).Result()
	if err != nil {
		return nil, wrap(err, "查询用户失败")
	}
	if len(fields) == 0 {
		return nil, user.ErrRecordNotFound
	}

	return toRecord(id, fields)
}

// FindAll 按Sorted Set顺序读取ID，再用Pipeline批量HGetAll（一次网络往返）
func (s *userStore) FindAll(ctx context.Context) ([]*user.Record, error) {
	members, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, wrap(err, "查询用户列表失败")
	}

	records := make([]*user.Record, 0, len(members))
	if len(members) == 0 {
		return records, nil
	}

	ids := make([]uint64, len(members))
	cmds := make([]*redis.MapStringStringCmd, len(members))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, member := range members {
			id, err := strconv.ParseUint(member, 10, 64)
			if err != nil {
				return err
			}
			ids[i] = id
			cmds[i] = pipe.HGetAll(ctx, s.userKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, wrap(err, "查询用户列表失败")
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		// 索引与Hash之间被并发删除
		if len(fields) == 0 {
			continue
		}
		record, err := toRecord(ids[i], fields)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Save INCR分配ID，再在MULTI/EXEC中写入Hash和索引
func (s *userStore) Save(ctx context.Context, record *user.Record) error {
	seq, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return wrap(err, "分配用户ID失败")
	}
	id := uint64(seq)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.userKey(id),
			fieldName, record.Name,
			fieldLastName, record.LastName,
			fieldEnabled, formatBool(record.Enabled),
		)
		pipe.ZAdd(ctx, s.indexKey(), redis.Z{
			Score:  float64(id),
			Member: strconv.FormatUint(id, 10),
		})
		return nil
	})
	if err != nil {
		return wrap(err, "创建用户失败")
	}

	record.ID = id
	return nil
}

// DeleteByID 同时删除Hash和索引成员，未知ID为空操作
func (s *userStore) DeleteByID(ctx context.Context, id uint64) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.userKey(id))
		pipe.ZRem(ctx, s.indexKey(), strconv.FormatUint(id, 10))
		return nil
	})
	if err != nil {
		return wrap(err, "删除用户失败")
	}
	return nil
}

// UpdateStatus 只在Hash存在时更新enabled字段
// WATCH保证检查与写入之间Key未被删除，否则EXEC失败
func (s *userStore) UpdateStatus(ctx context.Context, id uint64, enabled bool) error {
	key := s.userKey(id)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldEnabled, formatBool(enabled))
			return nil
		})
		return err
	}, key)
	if err != nil {
		return wrap(err, "更新用户状态失败")
	}
	return nil
}

func toRecord(id uint64, fields map[string]string) (*user.Record, error) {
	enabled, err := strconv.ParseBool(fields[fieldEnabled])
	if err != nil {
		return nil, wrap(err, "用户数据格式错误")
	}
	return user.NewRecord(id, fields[fieldName], fields[fieldLastName], enabled), nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func wrap(err error, message string) error {
	if errors.Is(err, redis.TxFailedErr) {
		message += "（并发修改）"
	}
	return apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, message)
}
