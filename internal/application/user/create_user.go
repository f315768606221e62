package user

import (
	"context"

	"github.com/xiebiao/userdao/internal/domain/user"
)

// CreateUserUseCase 新增用户用例
type CreateUserUseCase struct {
	saver user.Saver
}

// NewCreateUserUseCase 创建新增用例
func NewCreateUserUseCase(saver user.Saver) *CreateUserUseCase {
	return &CreateUserUseCase{saver: saver}
}

// CreateUserRequest 新增请求
type CreateUserRequest struct {
	Name     string
	LastName string
	Enabled  bool
}

// Execute 执行新增
// 返回：写入的用户信息；存储失败时返回DataError
func (uc *CreateUserUseCase) Execute(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	// 1. 请求DTO → 领域实体
	u := user.NewBuilder().
		Name(req.Name).
		LastName(req.LastName).
		Enabled(req.Enabled).
		Build()

	// 2. 持久化（ID由存储分配，不回传）
	if err := uc.saver.Persist(ctx, u); err != nil {
		return nil, err
	}

	return toResponse(u), nil
}
