package interfaces

import "bloghub-backend/internal/model"

// PostRepository 接口定义了帖子仓库应该实现的方法
type PostRepository interface {
	Create(post *model.Post, tagIDs []int) error
	FindByID(id int) (*model.Post, error)
	// FindBySlug 返回帖子详情；提供查看者身份时附带点赞注解；未找到时返回 nil
	FindBySlug(slug string, viewerID *int) (*model.Post, error)
	UpdateFeaturedImage(postID int, imageURL string) error
	Delete(id int) error
	// ListFeedPosts 返回信息流窗口：按创建时间倒序，从游标帖子（含）开始最多 limit 行
	ListFeedPosts(cursor *int, limit int, viewerID *int) ([]*model.FeedPost, error)
	ListPostsByAuthor(username string, viewerID *int) ([]*model.FeedPost, error)

	CreateLike(userID, postID int) error
	DeleteLike(userID, postID int) error
	CreateBookmark(userID, postID int) error
	DeleteBookmark(userID, postID int) error

	CreateComment(comment *model.Comment) error
	ListCommentsByPostID(postID int) ([]*model.Comment, error)

	// ListReadingList 返回用户最近的书签条目，最多 limit 条
	ListReadingList(userID, limit int) ([]*model.ReadingListItem, error)

	Count() (int, error)
	CountComments() (int, error)
}
