package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/service"
)

// Handler 后台管理接口的处理器
type Handler struct {
	adminService *service.AdminService
	analytics    *errors.ErrorAnalytics
}

// NewHandler 创建管理处理器
func NewHandler(adminService *service.AdminService, analytics *errors.ErrorAnalytics) *Handler {
	return &Handler{adminService: adminService, analytics: analytics}
}

// GetStats 返回全站统计数据
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetStats()
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, stats, "")
}

// GetErrorStats 返回错误监控统计
func (h *Handler) GetErrorStats(c *gin.Context) {
	errors.HandleSuccess(c, h.analytics.GetStats(), "")
}

// ListUsers 分页返回用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, err := h.adminService.ListUsers(page, pageSize)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, users, "")
}

type updateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole 调整用户角色
func (h *Handler) UpdateUserRole(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的用户ID", err))
		return
	}

	var input updateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	if err := h.adminService.UpdateUserRole(userID, input.Role); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "角色更新成功")
}

// DeleteUser 软删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的用户ID", err))
		return
	}

	if err := h.adminService.DeleteUser(userID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "用户已删除")
}

// DeletePost 删除帖子及其关联数据
func (h *Handler) DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的帖子ID", err))
		return
	}

	if err := h.adminService.DeletePost(postID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "帖子已删除")
}
