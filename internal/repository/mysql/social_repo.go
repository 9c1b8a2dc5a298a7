package mysql

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// SocialRepo 实现了 SocialRepository 接口
type SocialRepo struct {
	db *sql.DB
}

// NewSocialRepo 创建一个新的 SocialRepo 实例
func NewSocialRepo(db *sql.DB) interfaces.SocialRepository {
	return &SocialRepo{db: db}
}

// CreateFollow 添加关注边。INSERT IGNORE 保证重复关注为无操作。
func (r *SocialRepo) CreateFollow(followerID, followedID int) error {
	_, err := r.db.Exec(
		`INSERT IGNORE INTO follows (follower_id, followed_id, created_at) VALUES (?, ?, ?)`,
		followerID, followedID, time.Now())
	if err != nil {
		zap.L().Error("创建关注关系失败",
			zap.Int("follower_id", followerID), zap.Int("followed_id", followedID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "创建关注关系失败", err)
	}
	return nil
}

// DeleteFollow 删除关注边，边不存在时为无操作
func (r *SocialRepo) DeleteFollow(followerID, followedID int) error {
	_, err := r.db.Exec(
		`DELETE FROM follows WHERE follower_id = ? AND followed_id = ?`,
		followerID, followedID)
	if err != nil {
		zap.L().Error("删除关注关系失败",
			zap.Int("follower_id", followerID), zap.Int("followed_id", followedID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "删除关注关系失败", err)
	}
	return nil
}

// IsFollowing 查询关注边是否存在
func (r *SocialRepo) IsFollowing(followerID, followedID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = ? AND followed_id = ?)`,
		followerID, followedID).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "查询关注关系失败", err)
	}
	return exists, nil
}

// ListFollowers 返回关注 userID 的用户列表。
// 提供查看者身份时，对每个用户附带"查看者是否关注了他"的注解。
func (r *SocialRepo) ListFollowers(userID int, viewerID *int) ([]*model.FollowUser, error) {
	rows, err := r.db.Query(`
		SELECT u.id, u.name, u.username, u.avatar_url
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followed_id = ? AND u.deleted_at IS NULL
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		zap.L().Error("查询粉丝列表失败", zap.Int("user_id", userID), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询粉丝列表失败", err)
	}
	defer rows.Close()

	users, err := r.collectFollowUsers(rows)
	if err != nil {
		return nil, err
	}

	if viewerID != nil {
		for _, u := range users {
			followed, err := r.IsFollowing(*viewerID, u.ID)
			if err != nil {
				return nil, err
			}
			u.FollowedByViewer = &followed
		}
	}
	return users, nil
}

// ListFollowing 返回 userID 关注的用户列表
func (r *SocialRepo) ListFollowing(userID int) ([]*model.FollowUser, error) {
	rows, err := r.db.Query(`
		SELECT u.id, u.name, u.username, u.avatar_url
		FROM follows f
		JOIN users u ON u.id = f.followed_id
		WHERE f.follower_id = ? AND u.deleted_at IS NULL
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		zap.L().Error("查询关注列表失败", zap.Int("user_id", userID), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询关注列表失败", err)
	}
	defer rows.Close()

	return r.collectFollowUsers(rows)
}

func (r *SocialRepo) collectFollowUsers(rows *sql.Rows) ([]*model.FollowUser, error) {
	users := make([]*model.FollowUser, 0)
	for rows.Next() {
		u := &model.FollowUser{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.AvatarURL); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描用户行失败", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountFollows 返回关注边总数
func (r *SocialRepo) CountFollows() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM follows`).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "统计关注数失败", err)
	}
	return count, nil
}

// RecentLikedTagNames 返回用户最近 limit 次点赞的帖子所带的标签名。
// 多个帖子带同一标签时重复出现，下游推荐逻辑不关心重复。
func (r *SocialRepo) RecentLikedTagNames(userID, limit int) ([]string, error) {
	return r.recentEngagedTagNames("likes", userID, limit)
}

// RecentBookmarkedTagNames 返回用户最近 limit 次收藏的帖子所带的标签名
func (r *SocialRepo) RecentBookmarkedTagNames(userID, limit int) ([]string, error) {
	return r.recentEngagedTagNames("bookmarks", userID, limit)
}

func (r *SocialRepo) recentEngagedTagNames(table string, userID, limit int) ([]string, error) {
	// 内层子查询先截取最近的互动记录，再展开为标签名
	query := fmt.Sprintf(`
		SELECT t.name
		FROM (SELECT post_id FROM %s WHERE user_id = ? ORDER BY created_at DESC LIMIT ?) recent
		JOIN post_tags pt ON pt.post_id = recent.post_id
		JOIN tags t ON t.id = pt.tag_id`, table)

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		zap.L().Error("查询用户兴趣标签失败", zap.Int("user_id", userID), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户兴趣标签失败", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描标签名失败", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// FindUsersEngagedWithTags 返回点赞或收藏过任一指定标签帖子的用户，
// 排除 excludeUserID，去重后最多返回 limit 个。
func (r *SocialRepo) FindUsersEngagedWithTags(tagNames []string, excludeUserID, limit int) ([]*model.SuggestedUser, error) {
	if len(tagNames) == 0 {
		return []*model.SuggestedUser{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tagNames)), ",")
	query := fmt.Sprintf(`
		SELECT DISTINCT u.id, u.name, u.username, u.avatar_url
		FROM users u
		WHERE u.id != ? AND u.deleted_at IS NULL
			AND (
				EXISTS (
					SELECT 1 FROM likes l
					JOIN post_tags pt ON pt.post_id = l.post_id
					JOIN tags t ON t.id = pt.tag_id
					WHERE l.user_id = u.id AND t.name IN (%s)
				)
				OR EXISTS (
					SELECT 1 FROM bookmarks b
					JOIN post_tags pt ON pt.post_id = b.post_id
					JOIN tags t ON t.id = pt.tag_id
					WHERE b.user_id = u.id AND t.name IN (%s)
				)
			)
		LIMIT ?`, placeholders, placeholders)

	args := make([]interface{}, 0, 2*len(tagNames)+2)
	args = append(args, excludeUserID)
	for _, name := range tagNames {
		args = append(args, name)
	}
	for _, name := range tagNames {
		args = append(args, name)
	}
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		zap.L().Error("查询推荐用户失败", zap.Int("user_id", excludeUserID), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询推荐用户失败", err)
	}
	defer rows.Close()

	users := make([]*model.SuggestedUser, 0)
	for rows.Next() {
		u := &model.SuggestedUser{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.AvatarURL); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描推荐用户行失败", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
