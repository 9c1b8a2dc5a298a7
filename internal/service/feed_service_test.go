package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bloghub-backend/internal/model"
)

func makeFeedPosts(ids ...int) []*model.FeedPost {
	posts := make([]*model.FeedPost, 0, len(ids))
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range ids {
		posts = append(posts, &model.FeedPost{
			ID:        id,
			Slug:      "post",
			Title:     "标题",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return posts
}

func TestGetFeedFullPageWithNextCursor(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewFeedService(repo)

	// 仓库取到 11 行，说明还有下一页
	rows := makeFeedPosts(20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10)
	repo.On("ListFeedPosts", (*int)(nil), FeedPageSize+1, (*int)(nil)).Return(rows, nil)

	page, err := svc.GetFeed(nil, nil)

	assert.NoError(t, err)
	assert.Len(t, page.Posts, FeedPageSize)
	assert.Equal(t, 20, page.Posts[0].ID)
	assert.Equal(t, 11, page.Posts[FeedPageSize-1].ID)
	// 第 11 行被弹出，它的 ID 成为下一页的游标
	if assert.NotNil(t, page.NextCursor) {
		assert.Equal(t, 10, *page.NextCursor)
	}
	repo.AssertExpectations(t)
}

func TestGetFeedLastPageHasNoCursor(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewFeedService(repo)

	rows := makeFeedPosts(5, 4, 3, 2, 1)
	repo.On("ListFeedPosts", (*int)(nil), FeedPageSize+1, (*int)(nil)).Return(rows, nil)

	page, err := svc.GetFeed(nil, nil)

	assert.NoError(t, err)
	assert.Len(t, page.Posts, 5)
	assert.Nil(t, page.NextCursor)
}

func TestGetFeedExactlyOnePageHasNoCursor(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewFeedService(repo)

	// 恰好 10 行：探针行不存在，没有下一页
	rows := makeFeedPosts(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	repo.On("ListFeedPosts", (*int)(nil), FeedPageSize+1, (*int)(nil)).Return(rows, nil)

	page, err := svc.GetFeed(nil, nil)

	assert.NoError(t, err)
	assert.Len(t, page.Posts, FeedPageSize)
	assert.Nil(t, page.NextCursor)
}

func TestGetFeedEmpty(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewFeedService(repo)

	repo.On("ListFeedPosts", (*int)(nil), FeedPageSize+1, (*int)(nil)).Return([]*model.FeedPost{}, nil)

	page, err := svc.GetFeed(nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Nil(t, page.NextCursor)
}

func TestGetFeedPassesCursorAndViewerThrough(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewFeedService(repo)

	cursor := 42
	viewer := 7
	rows := makeFeedPosts(42, 41, 40)
	repo.On("ListFeedPosts", &cursor, FeedPageSize+1, &viewer).Return(rows, nil)

	page, err := svc.GetFeed(&cursor, &viewer)

	assert.NoError(t, err)
	// 游标帖子本身是本页的第一行
	assert.Equal(t, 42, page.Posts[0].ID)
	repo.AssertExpectations(t)
}
