package unsplash

import (
	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/service"
)

// Handler 图片搜索接口的处理器
type Handler struct {
	unsplashService *service.UnsplashService
}

// NewHandler 创建图片搜索处理器
func NewHandler(unsplashService *service.UnsplashService) *Handler {
	return &Handler{unsplashService: unsplashService}
}

// Search 搜索可用作题图的横向图片
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "缺少搜索关键词"))
		return
	}

	result, err := h.unsplashService.SearchImages(query)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, result, "")
}
