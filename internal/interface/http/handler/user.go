package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/userdao/internal/application/user"
	"github.com/xiebiao/userdao/internal/interface/http/dto"
	apperrors "github.com/xiebiao/userdao/pkg/errors"
	"github.com/xiebiao/userdao/pkg/response"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 使用依赖注入，便于测试
type UserHandler struct {
	getUseCase       *appuser.GetUserUseCase
	listUseCase      *appuser.ListUsersUseCase
	createUseCase    *appuser.CreateUserUseCase
	setStatusUseCase *appuser.SetUserStatusUseCase
	deleteUseCase    *appuser.DeleteUserUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	getUseCase *appuser.GetUserUseCase,
	listUseCase *appuser.ListUsersUseCase,
	createUseCase *appuser.CreateUserUseCase,
	setStatusUseCase *appuser.SetUserStatusUseCase,
	deleteUseCase *appuser.DeleteUserUseCase,
) *UserHandler {
	return &UserHandler{
		getUseCase:       getUseCase,
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		setStatusUseCase: setStatusUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// ListUsers 用户列表
// @Summary      用户列表
// @Description  返回全部用户，按ID升序
// @Tags         用户
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.UserResponse} "查询成功"
// @Router       /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.UserResponse, 0, len(result))
	for _, u := range result {
		list = append(list, toDTO(u))
	}
	response.Success(c, list)
}

// GetUser 用户详情
// @Summary      用户详情
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response{data=dto.UserResponse} "查询成功"
// @Failure      200 {object} response.Response "40401 用户不存在 / 40900 参数错误"
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toDTO(result))
}

// CreateUser 新增用户
// @Summary      新增用户
// @Description  ID由存储分配，不在响应中返回
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "用户信息"
// @Success      200 {object} response.Response{data=dto.UserResponse} "创建成功"
// @Failure      200 {object} response.Response "40900 参数错误 / 50010 保存失败"
// @Router       /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	// 学习要点：Gin的ShouldBindJSON会自动校验binding tag
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appuser.CreateUserRequest{
		Name:     req.Name,
		LastName: req.LastName,
		Enabled:  req.Enabled,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toDTO(result))
}

// SetStatus 启用/禁用用户
// @Summary      启用/禁用用户
// @Description  用户不存在时同样返回成功
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body dto.SetStatusRequest true "状态"
// @Success      200 {object} response.Response "更新成功"
// @Failure      200 {object} response.Response "40900 参数错误 / 50010 更新失败"
// @Router       /api/v1/users/{id}/status [put]
func (h *UserHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	if err := h.setStatusUseCase.Execute(c.Request.Context(), id, *req.Enabled); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// DeleteUser 删除用户
// @Summary      删除用户
// @Description  用户不存在时同样返回成功
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      200 {object} response.Response "40900 参数错误 / 50010 删除失败"
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// parseID 解析路径参数id，失败时已写入响应
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: 无效的用户ID")
		return 0, false
	}
	return id, true
}

func toDTO(u *appuser.UserResponse) *dto.UserResponse {
	return &dto.UserResponse{
		Name:     u.Name,
		LastName: u.LastName,
		FullName: u.FullName,
		Enabled:  u.Enabled,
	}
}
