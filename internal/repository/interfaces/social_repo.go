package interfaces

import "bloghub-backend/internal/model"

// SocialRepository 接口定义了社交关系仓库应该实现的方法
type SocialRepository interface {
	// CreateFollow 添加关注边，边已存在时为无操作
	CreateFollow(followerID, followedID int) error
	// DeleteFollow 删除关注边，边不存在时为无操作
	DeleteFollow(followerID, followedID int) error
	IsFollowing(followerID, followedID int) (bool, error)
	// ListFollowers 返回关注 userID 的用户；提供查看者身份时附带"查看者是否也关注了他"注解
	ListFollowers(userID int, viewerID *int) ([]*model.FollowUser, error)
	ListFollowing(userID int) ([]*model.FollowUser, error)
	CountFollows() (int, error)

	// RecentLikedTagNames 返回用户最近 limit 次点赞的帖子所带的标签名，保留重复
	RecentLikedTagNames(userID, limit int) ([]string, error)
	// RecentBookmarkedTagNames 返回用户最近 limit 次收藏的帖子所带的标签名，保留重复
	RecentBookmarkedTagNames(userID, limit int) ([]string, error)
	// FindUsersEngagedWithTags 返回点赞或收藏过任一指定标签帖子的用户，排除 excludeUserID
	FindUsersEngagedWithTags(tagNames []string, excludeUserID, limit int) ([]*model.SuggestedUser, error)
}
