package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestHandleErrorMapsBusinessCodes(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		status int
	}{
		{ErrSelfFollow, http.StatusBadRequest},
		{ErrAlreadyLiked, http.StatusConflict},
		{ErrAlreadyBookmarked, http.StatusConflict},
		{ErrTagExists, http.StatusConflict},
		{ErrSlugExists, http.StatusConflict},
		{ErrPostNotFound, http.StatusNotFound},
		{ErrForbidden, http.StatusForbidden},
		{ErrUpstream, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		c, w := newTestContext()
		HandleError(c, New(tc.code, "boom"))
		assert.Equal(t, tc.status, w.Code, "code %d", tc.code)
	}
}

func TestHandleErrorUnknownErrorIsInternal(t *testing.T) {
	c, w := newTestContext()
	HandleError(c, fmt.Errorf("plain error"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "plain error")
}

func TestHandleErrorRecordsOnGinContext(t *testing.T) {
	c, _ := newTestContext()
	HandleError(c, New(ErrPostNotFound, "帖子不存在"))

	assert.Len(t, c.Errors, 1)
}

func TestAppErrorFormatting(t *testing.T) {
	plain := New(ErrUserNotFound, "用户不存在")
	assert.Equal(t, "[4000] 用户不存在", plain.Error())

	wrapped := Wrap(ErrDatabase, "查询失败", fmt.Errorf("connection refused"))
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestErrorAnalyticsRecord(t *testing.T) {
	analytics := NewErrorAnalytics()

	traced := NewTracedError(New(ErrDatabase, "boom"), ErrorContext{Path: "/api/posts"})
	analytics.Record(traced)
	analytics.Record(traced)

	stats := analytics.GetStats()
	assert.Equal(t, 2, stats["total_errors"])
	assert.Equal(t, 2, stats["errors_by_code"].(map[ErrorCode]int)[ErrDatabase])
	assert.Equal(t, 2, stats["errors_by_path"].(map[string]int)["/api/posts"])
}
