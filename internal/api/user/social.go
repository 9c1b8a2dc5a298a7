package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/middleware"
)

func targetUserID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.Wrap(errors.ErrBadRequest, "无效的用户ID", err)
	}
	return id, nil
}

type followInput struct {
	UserID int `json:"user_id" binding:"required"`
}

// Follow 关注指定用户
func (h *Handler) Follow(c *gin.Context) {
	var input followInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	if err := h.socialService.Follow(middleware.CurrentUserID(c), input.UserID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "关注成功")
}

// Unfollow 取消关注指定用户
func (h *Handler) Unfollow(c *gin.Context) {
	followedID, err := targetUserID(c)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.socialService.Unfollow(middleware.CurrentUserID(c), followedID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "已取消关注")
}

// GetFollowers 返回指定用户的粉丝列表
func (h *Handler) GetFollowers(c *gin.Context) {
	users, err := h.socialService.GetFollowers(c.Param("username"), middleware.ViewerID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, users, "")
}

// GetFollowing 返回指定用户关注的人
func (h *Handler) GetFollowing(c *gin.Context) {
	users, err := h.socialService.GetFollowing(c.Param("username"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, users, "")
}

// GetSuggestions 返回基于兴趣标签的推荐关注列表
func (h *Handler) GetSuggestions(c *gin.Context) {
	users, err := h.suggestionService.GetSuggestions(middleware.CurrentUserID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, users, "")
}
