package user

import (
	"context"

	"github.com/xiebiao/userdao/internal/domain/user"
)

// GetUserUseCase 按ID查询用户
type GetUserUseCase struct {
	getter user.Getter
}

// NewGetUserUseCase 创建查询用例
func NewGetUserUseCase(getter user.Getter) *GetUserUseCase {
	return &GetUserUseCase{getter: getter}
}

// Execute 用户不存在时返回apperrors.ErrUserNotFound
func (uc *GetUserUseCase) Execute(ctx context.Context, id uint64) (*UserResponse, error) {
	u, err := uc.getter.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(u), nil
}
