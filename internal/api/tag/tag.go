package tag

import (
	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/service"
)

// Handler 标签接口的处理器
type Handler struct {
	tagService *service.TagService
}

// NewHandler 创建标签处理器
func NewHandler(tagService *service.TagService) *Handler {
	return &Handler{tagService: tagService}
}

type createTagInput struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description"`
}

// Create 创建标签，名称重复时返回409
func (h *Handler) Create(c *gin.Context) {
	var input createTagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	created, err := h.tagService.CreateTag(input.Name, input.Description)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, created, "标签创建成功")
}

// List 返回全部标签
func (h *Handler) List(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, tags, "")
}
