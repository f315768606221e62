package user

import (
	"context"

	"github.com/xiebiao/userdao/internal/domain/user"
)

// DeleteUserUseCase 删除用户，用户不存在时静默成功
type DeleteUserUseCase struct {
	deleter user.Deleter
}

// NewDeleteUserUseCase 创建删除用例
func NewDeleteUserUseCase(deleter user.Deleter) *DeleteUserUseCase {
	return &DeleteUserUseCase{deleter: deleter}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint64) error {
	return uc.deleter.Delete(ctx, id)
}
