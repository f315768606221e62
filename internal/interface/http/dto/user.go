package dto

// CreateUserRequest HTTP层新增用户请求
// 说明：HTTP层的DTO，包含参数验证tag
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required" example:"Barbara"`
	LastName string `json:"last_name" binding:"required" example:"Liskov"`
	Enabled  bool   `json:"enabled" example:"true"`
}

// SetStatusRequest 启用/禁用请求
// 说明：bool零值无法用required区分"未传"，因此使用指针
type SetStatusRequest struct {
	Enabled *bool `json:"enabled" binding:"required" example:"false"`
}

// UserResponse 用户响应（领域User没有ID）
type UserResponse struct {
	Name     string `json:"name" example:"Barbara"`
	LastName string `json:"last_name" example:"Liskov"`
	FullName string `json:"full_name" example:"Barbara Liskov"`
	Enabled  bool   `json:"enabled" example:"true"`
}
