package user

import (
	"context"

	"github.com/xiebiao/userdao/internal/domain/user"
)

// ListUsersUseCase 用户列表查询用例
// 设计说明：
// 1. 不分页，返回存储中的全部用户
// 2. 顺序与存储返回的顺序一致（按ID升序）
type ListUsersUseCase struct {
	getter user.Getter
}

// NewListUsersUseCase 创建列表查询用例
func NewListUsersUseCase(getter user.Getter) *ListUsersUseCase {
	return &ListUsersUseCase{getter: getter}
}

// Execute 空存储返回空列表（非nil，序列化为[]）
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*UserResponse, error) {
	users, err := uc.getter.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, toResponse(u))
	}
	return list, nil
}
