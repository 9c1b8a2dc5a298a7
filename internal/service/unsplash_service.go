package service

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"bloghub-backend/config"
	"bloghub-backend/internal/errors"
)

const unsplashSearchURL = "https://api.unsplash.com/search/photos"

// UnsplashImage 图片搜索结果中的一张图片
type UnsplashImage struct {
	ID   string `json:"id"`
	URLs struct {
		Raw     string `json:"raw"`
		Full    string `json:"full"`
		Regular string `json:"regular"`
		Small   string `json:"small"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
	AltDescription string `json:"alt_description"`
}

// UnsplashSearchResult 图片搜索的响应
type UnsplashSearchResult struct {
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Results    []UnsplashImage `json:"results"`
}

// UnsplashService 代理上游图片搜索接口，对外隐藏上游错误细节
type UnsplashService struct {
	client    *http.Client
	accessKey string
}

// NewUnsplashService 创建图片搜索服务
func NewUnsplashService() *UnsplashService {
	return &UnsplashService{
		client:    &http.Client{Timeout: 10 * time.Second},
		accessKey: config.AppConfig.UnsplashAccessKey,
	}
}

// SearchImages 搜索横向构图的图片，按相关性排序。
// 上游失败时返回统一的上游错误，不向调用方透露上游响应内容。
func (s *UnsplashService) SearchImages(query string) (*UnsplashSearchResult, error) {
	if s.accessKey == "" {
		return nil, errors.New(errors.ErrUpstream, "图片搜索服务未配置")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "landscape")
	params.Set("order_by", "relevant")

	req, err := http.NewRequest(http.MethodGet, unsplashSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "构造图片搜索请求失败", err)
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Error("图片搜索请求失败", zap.String("query", query), zap.Error(err))
		return nil, errors.New(errors.ErrUpstream, "图片搜索服务暂不可用")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("图片搜索上游返回错误",
			zap.String("query", query), zap.Int("status", resp.StatusCode))
		return nil, errors.New(errors.ErrUpstream, "图片搜索服务暂不可用")
	}

	result := &UnsplashSearchResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		zap.L().Error("解析图片搜索响应失败", zap.Error(err))
		return nil, errors.New(errors.ErrUpstream, "图片搜索服务暂不可用")
	}
	return result, nil
}
