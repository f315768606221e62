package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/xiebiao/userdao/internal/domain/user"
)

// userStore 用户存储实现（进程内存）
// 设计说明：
// 1. 读写锁保护map，支持并发调用
// 2. 存取都做值拷贝，调用方修改返回的记录不会影响存储
// 3. ID从1开始自增，删除后不复用
type userStore struct {
	mu      sync.RWMutex
	records map[uint64]user.Record
	nextID  uint64
}

// NewUserStore 创建内存存储
func NewUserStore() user.Store {
	return &userStore{
		records: make(map[uint64]user.Record),
		nextID:  1,
	}
}

func (s *userStore) FindByID(_ context.Context, id uint64) (*user.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, user.ErrRecordNotFound
	}
	return &r, nil
}

// FindAll 按ID升序返回
func (s *userStore) FindAll(_ context.Context) ([]*user.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*user.Record, 0, len(s.records))
	for _, r := range s.records {
		r := r
		records = append(records, &r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// Save 分配ID并回填到record
func (s *userStore) Save(_ context.Context, record *user.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	s.nextID++
	s.records[record.ID] = *record
	return nil
}

// DeleteByID 未知ID为空操作
func (s *userStore) DeleteByID(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	return nil
}

// UpdateStatus 未知ID为空操作
func (s *userStore) UpdateStatus(_ context.Context, id uint64, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return nil
	}
	r.Enabled = enabled
	s.records[id] = r
	return nil
}
