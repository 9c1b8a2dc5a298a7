package post

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/middleware"
	"bloghub-backend/internal/service"
)

// Handler 帖子相关接口的处理器
type Handler struct {
	postService *service.PostService
	feedService *service.FeedService
}

// NewHandler 创建帖子处理器
func NewHandler(postService *service.PostService, feedService *service.FeedService) *Handler {
	return &Handler{postService: postService, feedService: feedService}
}

// Create 创建帖子
func (h *Handler) Create(c *gin.Context) {
	var input service.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	created, err := h.postService.CreatePost(middleware.CurrentUserID(c), &input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, created, "帖子创建成功")
}

// GetFeed 返回一页信息流。cursor 参数缺省表示第一页。
func (h *Handler) GetFeed(c *gin.Context) {
	var cursor *int
	if raw := c.Query("cursor"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的游标", err))
			return
		}
		cursor = &id
	}

	page, err := h.feedService.GetFeed(cursor, middleware.ViewerID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, page, "")
}

// GetBySlug 返回帖子详情。帖子不存在时返回空数据而不是404。
func (h *Handler) GetBySlug(c *gin.Context) {
	found, err := h.postService.GetPostBySlug(c.Param("slug"), middleware.ViewerID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, found, "")
}

// GetByAuthor 返回指定作者的帖子列表
func (h *Handler) GetByAuthor(c *gin.Context) {
	posts, err := h.postService.GetPostsByAuthor(c.Param("username"), middleware.ViewerID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, posts, "")
}

func postIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.Wrap(errors.ErrBadRequest, "无效的帖子ID", err)
	}
	return id, nil
}

type updateFeatureImageInput struct {
	PostID   int    `json:"post_id" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

// UpdateFeatureImage 更新帖子题图，仅作者可操作
func (h *Handler) UpdateFeatureImage(c *gin.Context) {
	var input updateFeatureImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	if err := h.postService.UpdateFeatureImage(middleware.CurrentUserID(c), input.PostID, input.ImageURL); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "题图更新成功")
}
