package post

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/middleware"
)

type postRefInput struct {
	PostID int `json:"post_id" binding:"required"`
}

// Like 点赞帖子
func (h *Handler) Like(c *gin.Context) {
	var input postRefInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	if err := h.postService.LikePost(middleware.CurrentUserID(c), input.PostID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "点赞成功")
}

// Unlike 取消点赞
func (h *Handler) Unlike(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.postService.UnlikePost(middleware.CurrentUserID(c), postID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "已取消点赞")
}

// Bookmark 收藏帖子
func (h *Handler) Bookmark(c *gin.Context) {
	var input postRefInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	if err := h.postService.BookmarkPost(middleware.CurrentUserID(c), input.PostID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "收藏成功")
}

// Unbookmark 取消收藏
func (h *Handler) Unbookmark(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.postService.UnbookmarkPost(middleware.CurrentUserID(c), postID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "已取消收藏")
}

type commentInput struct {
	PostID int    `json:"post_id" binding:"required"`
	Text   string `json:"text" binding:"required,min=3"`
}

// Comment 发表评论
func (h *Handler) Comment(c *gin.Context) {
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	comment, err := h.postService.CommentPost(middleware.CurrentUserID(c), input.PostID, input.Text)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, comment, "评论成功")
}

// GetComments 返回帖子的评论列表
func (h *Handler) GetComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Query("post_id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的帖子ID", err))
		return
	}

	comments, err := h.postService.GetComments(postID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, comments, "")
}

// GetReadingList 返回当前用户最近收藏的帖子
func (h *Handler) GetReadingList(c *gin.Context) {
	items, err := h.postService.GetReadingList(middleware.CurrentUserID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, items, "")
}
