package user

import (
	"github.com/xiebiao/userdao/internal/domain/user"
)

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// UserResponse 用户信息
// 说明：领域User没有身份标识，因此这里不返回ID
type UserResponse struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	FullName string `json:"full_name"`
	Enabled  bool   `json:"enabled"`
}

func toResponse(u user.User) *UserResponse {
	return &UserResponse{
		Name:     u.Name(),
		LastName: u.LastName(),
		FullName: u.FullName(),
		Enabled:  u.IsEnabled(),
	}
}
