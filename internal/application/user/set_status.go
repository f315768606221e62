package user

import (
	"context"

	"github.com/xiebiao/userdao/internal/domain/user"
)

// SetUserStatusUseCase 启用/禁用用户
// 说明：用户不存在时静默成功，与DAO语义一致
type SetUserStatusUseCase struct {
	updater user.StatusUpdater
}

// NewSetUserStatusUseCase 创建状态更新用例
func NewSetUserStatusUseCase(updater user.StatusUpdater) *SetUserStatusUseCase {
	return &SetUserStatusUseCase{updater: updater}
}

func (uc *SetUserStatusUseCase) Execute(ctx context.Context, id uint64, enabled bool) error {
	return uc.updater.SetStatus(ctx, id, enabled)
}
