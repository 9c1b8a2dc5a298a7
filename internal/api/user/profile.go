package user

import (
	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/middleware"
	"bloghub-backend/internal/service"
)

// GetProfile 返回指定用户的公开主页。
// 用户不存在时返回空数据而不是404，前端据此展示空状态。
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Param("username"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, profile, "")
}

// UpdateProfile 更新当前用户的展示资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	user, err := h.userService.UpdateProfile(middleware.CurrentUserID(c), &input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, user, "资料更新成功")
}

type updateAvatarInput struct {
	// 头像以 data URL 形式提交，服务端解码后转存对象存储
	ImageDataURL string `json:"image_data_url" binding:"required"`
}

// UploadAvatarFile 以 multipart 表单方式上传头像
func (h *Handler) UploadAvatarFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "缺少头像文件", err))
		return
	}

	url, err := h.userService.UpdateAvatarFile(middleware.CurrentUserID(c), file)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{"avatar_url": url}, "头像更新成功")
}

// UpdateAvatar 更新当前用户的头像
func (h *Handler) UpdateAvatar(c *gin.Context) {
	var input updateAvatarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	url, err := h.userService.UpdateAvatar(middleware.CurrentUserID(c), input.ImageDataURL)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{"avatar_url": url}, "头像更新成功")
}
