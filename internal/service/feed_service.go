package service

import (
	"go.uber.org/zap"

	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// FeedPageSize 信息流每页的帖子数
const FeedPageSize = 10

// FeedService 负责信息流的游标分页
type FeedService struct {
	postRepo interfaces.PostRepository
}

// NewFeedService 创建信息流服务
func NewFeedService(postRepo interfaces.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// GetFeed 返回一页信息流。
// 多取一行作为探针：取到满 11 行说明还有下一页，弹出最后一行作为下一页的游标。
// 游标指向的帖子属于本页，因此翻页时每个帖子恰好出现一次。
func (s *FeedService) GetFeed(cursor *int, viewerID *int) (*model.FeedPage, error) {
	posts, err := s.postRepo.ListFeedPosts(cursor, FeedPageSize+1, viewerID)
	if err != nil {
		return nil, err
	}

	page := &model.FeedPage{Posts: posts}
	if len(posts) > FeedPageSize {
		next := posts[FeedPageSize].ID
		page.Posts = posts[:FeedPageSize]
		page.NextCursor = &next
	}

	zap.L().Debug("返回信息流页",
		zap.Int("count", len(page.Posts)),
		zap.Bool("has_next", page.NextCursor != nil))
	return page, nil
}
