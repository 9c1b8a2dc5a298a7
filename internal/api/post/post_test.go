package post

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
	"bloghub-backend/internal/service"
)

// stubPostRepo 只实现信息流查询，其余方法继承自空接口，调用即 panic
type stubPostRepo struct {
	interfaces.PostRepository
	posts []*model.FeedPost
}

func (s *stubPostRepo) ListFeedPosts(cursor *int, limit int, viewerID *int) ([]*model.FeedPost, error) {
	out := make([]*model.FeedPost, 0, len(s.posts))
	for _, p := range s.posts {
		copied := *p
		if viewerID != nil {
			liked := true
			bookmarked := false
			copied.IsLiked = &liked
			copied.IsBookmarked = &bookmarked
		}
		out = append(out, &copied)
	}
	return out, nil
}

func newFeedRouter(repo interfaces.PostRepository, viewerID *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(nil, service.NewFeedService(repo))
	r.GET("/api/posts", func(c *gin.Context) {
		if viewerID != nil {
			c.Set("user_id", *viewerID)
		}
		handler.GetFeed(c)
	})
	return r
}

func feedFixture() *stubPostRepo {
	return &stubPostRepo{
		posts: []*model.FeedPost{
			{
				ID:        1,
				Slug:      "hello-world",
				Title:     "Hello World",
				CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
				Tags:      []*model.Tag{},
			},
		},
	}
}

func TestGetFeedAnonymousOmitsViewerAnnotations(t *testing.T) {
	router := newFeedRouter(feedFixture(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// 匿名请求的响应中不允许出现注解字段，连 false 都不行
	assert.NotContains(t, w.Body.String(), "is_liked")
	assert.NotContains(t, w.Body.String(), "is_bookmarked")
}

func TestGetFeedAuthenticatedIncludesViewerAnnotations(t *testing.T) {
	viewer := 7
	router := newFeedRouter(feedFixture(), &viewer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_liked":true`)
	assert.Contains(t, w.Body.String(), `"is_bookmarked":false`)
}

func TestGetFeedRejectsMalformedCursor(t *testing.T) {
	router := newFeedRouter(feedFixture(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts?cursor=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFeedResponseShape(t *testing.T) {
	router := newFeedRouter(feedFixture(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	router.ServeHTTP(w, req)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Posts      []json.RawMessage `json:"posts"`
			NextCursor *int              `json:"next_cursor"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Posts, 1)
	// 只有一页时不返回游标
	assert.Nil(t, resp.Data.NextCursor)
}
