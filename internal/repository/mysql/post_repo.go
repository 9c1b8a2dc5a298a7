package mysql

import (
	"database/sql"
	"strings"
	"time"

	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// PostRepo 实现了 PostRepository 接口
type PostRepo struct {
	db *sql.DB
}

// NewPostRepo 创建一个新的 PostRepo 实例
func NewPostRepo(db *sql.DB) interfaces.PostRepository {
	return &PostRepo{db: db}
}

// Create 在同一事务中创建帖子及其标签关联
func (r *PostRepo) Create(post *model.Post, tagIDs []int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "开启事务失败", err)
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.Exec(`
		INSERT INTO posts (author_id, title, slug, description, text, html, featured_image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.AuthorID, post.Title, post.Slug, post.Description,
		post.Text, post.HTML, post.FeaturedImage, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return errors.New(errors.ErrSlugExists, "帖子标识符已存在")
		}
		zap.L().Error("创建帖子失败", zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "创建帖子失败", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "获取帖子ID失败", err)
	}
	post.ID = int(id)
	post.CreatedAt = now
	post.UpdatedAt = now

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(`INSERT INTO post_tags (post_id, tag_id) VALUES (?, ?)`, post.ID, tagID); err != nil {
			zap.L().Error("关联帖子标签失败", zap.Int("post_id", post.ID), zap.Int("tag_id", tagID), zap.Error(err))
			return errors.Wrap(errors.ErrDatabase, "关联帖子标签失败", err)
		}
	}

	return tx.Commit()
}

// FindByID 根据ID查找帖子，未找到时返回 nil
func (r *PostRepo) FindByID(id int) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.QueryRow(`
		SELECT id, author_id, title, slug, description, text, html, featured_image, created_at, updated_at
		FROM posts WHERE id = ?`, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Slug, &post.Description,
		&post.Text, &post.HTML, &post.FeaturedImage, &post.CreatedAt, &post.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("查询帖子失败", zap.Int("post_id", id), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询帖子失败", err)
	}
	return post, nil
}

// FindBySlug 返回帖子详情，包含作者、标签，以及查看者的点赞注解
func (r *PostRepo) FindBySlug(slug string, viewerID *int) (*model.Post, error) {
	post := &model.Post{Author: &model.User{}}
	err := r.db.QueryRow(`
		SELECT p.id, p.author_id, p.title, p.slug, p.description, p.text, p.html, p.featured_image,
			p.created_at, p.updated_at, u.id, u.name, u.username, u.avatar_url
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.slug = ?`, slug).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Slug, &post.Description,
		&post.Text, &post.HTML, &post.FeaturedImage, &post.CreatedAt, &post.UpdatedAt,
		&post.Author.ID, &post.Author.Name, &post.Author.Username, &post.Author.AvatarURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("查询帖子详情失败", zap.String("slug", slug), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询帖子详情失败", err)
	}

	tags, err := r.tagsOfPost(post.ID)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	// 匿名访问时不附带注解字段，而不是返回 false
	if viewerID != nil {
		liked, err := r.edgeExists("likes", *viewerID, post.ID)
		if err != nil {
			return nil, err
		}
		bookmarked, err := r.edgeExists("bookmarks", *viewerID, post.ID)
		if err != nil {
			return nil, err
		}
		post.IsLiked = &liked
		post.IsBookmarked = &bookmarked
	}
	return post, nil
}

// UpdateFeaturedImage 更新帖子的题图地址
func (r *PostRepo) UpdateFeaturedImage(postID int, imageURL string) error {
	_, err := r.db.Exec(`UPDATE posts SET featured_image = ?, updated_at = ? WHERE id = ?`,
		imageURL, time.Now(), postID)
	if err != nil {
		zap.L().Error("更新帖子题图失败", zap.Int("post_id", postID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "更新帖子题图失败", err)
	}
	return nil
}

// Delete 删除帖子及其关联边
func (r *PostRepo) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "开启事务失败", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"post_tags", "likes", "bookmarks", "comments"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE post_id = ?`, id); err != nil {
			return errors.Wrap(errors.ErrDatabase, "删除帖子关联数据失败", err)
		}
	}
	if _, err := tx.Exec(`DELETE FROM posts WHERE id = ?`, id); err != nil {
		return errors.Wrap(errors.ErrDatabase, "删除帖子失败", err)
	}
	return tx.Commit()
}

const feedColumns = `
	p.id, p.slug, p.title, p.description, p.featured_image, p.created_at,
	u.name, u.username, u.avatar_url`

// ListFeedPosts 返回信息流窗口。游标指向的帖子包含在窗口内，
// 排序键为 (created_at DESC, id DESC)，保证同一秒创建的帖子顺序稳定。
func (r *PostRepo) ListFeedPosts(cursor *int, limit int, viewerID *int) ([]*model.FeedPost, error) {
	var rows *sql.Rows
	var err error

	if cursor == nil {
		rows, err = r.db.Query(`
			SELECT `+feedColumns+`
			FROM posts p
			JOIN users u ON u.id = p.author_id
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT ?`, limit)
	} else {
		// 先解析游标帖子的创建时间，再做元组比较。游标帖子不存在时返回空页。
		var cursorCreatedAt time.Time
		err = r.db.QueryRow(`SELECT created_at FROM posts WHERE id = ?`, *cursor).Scan(&cursorCreatedAt)
		if err == sql.ErrNoRows {
			return []*model.FeedPost{}, nil
		}
		if err != nil {
			zap.L().Error("解析信息流游标失败", zap.Int("cursor", *cursor), zap.Error(err))
			return nil, errors.Wrap(errors.ErrDatabase, "解析信息流游标失败", err)
		}

		rows, err = r.db.Query(`
			SELECT `+feedColumns+`
			FROM posts p
			JOIN users u ON u.id = p.author_id
			WHERE p.created_at < ? OR (p.created_at = ? AND p.id <= ?)
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT ?`, cursorCreatedAt, cursorCreatedAt, *cursor, limit)
	}
	if err != nil {
		zap.L().Error("查询信息流失败", zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询信息流失败", err)
	}
	defer rows.Close()

	return r.collectFeedPosts(rows, viewerID)
}

// ListPostsByAuthor 返回指定作者的全部帖子，按创建时间倒序
func (r *PostRepo) ListPostsByAuthor(username string, viewerID *int) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(`
		SELECT `+feedColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE u.username = ?
		ORDER BY p.created_at DESC, p.id DESC`, username)
	if err != nil {
		zap.L().Error("查询作者帖子失败", zap.String("username", username), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询作者帖子失败", err)
	}
	defer rows.Close()

	return r.collectFeedPosts(rows, viewerID)
}

func (r *PostRepo) collectFeedPosts(rows *sql.Rows, viewerID *int) ([]*model.FeedPost, error) {
	posts := make([]*model.FeedPost, 0)
	for rows.Next() {
		post := &model.FeedPost{}
		err := rows.Scan(
			&post.ID, &post.Slug, &post.Title, &post.Description, &post.FeaturedImage, &post.CreatedAt,
			&post.Author.Name, &post.Author.Username, &post.Author.AvatarURL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描帖子行失败", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "遍历帖子行失败", err)
	}

	for _, post := range posts {
		tags, err := r.tagsOfPost(post.ID)
		if err != nil {
			return nil, err
		}
		post.Tags = tags

		if viewerID != nil {
			liked, err := r.edgeExists("likes", *viewerID, post.ID)
			if err != nil {
				return nil, err
			}
			bookmarked, err := r.edgeExists("bookmarks", *viewerID, post.ID)
			if err != nil {
				return nil, err
			}
			post.IsLiked = &liked
			post.IsBookmarked = &bookmarked
		}
	}
	return posts, nil
}

func (r *PostRepo) tagsOfPost(postID int) ([]*model.Tag, error) {
	rows, err := r.db.Query(`
		SELECT t.id, t.name, t.slug, t.description
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = ?
		ORDER BY t.name`, postID)
	if err != nil {
		zap.L().Error("查询帖子标签失败", zap.Int("post_id", postID), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询帖子标签失败", err)
	}
	defer rows.Close()

	tags := make([]*model.Tag, 0)
	for rows.Next() {
		tag := &model.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Description); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描标签行失败", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *PostRepo) edgeExists(table string, userID, postID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM `+table+` WHERE user_id = ? AND post_id = ?)`,
		userID, postID).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "查询用户互动状态失败", err)
	}
	return exists, nil
}

// CreateLike 添加点赞边，重复点赞返回冲突错误
func (r *PostRepo) CreateLike(userID, postID int) error {
	_, err := r.db.Exec(`INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, ?)`,
		userID, postID, time.Now())
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return errors.New(errors.ErrAlreadyLiked, "已经点赞过该帖子")
		}
		zap.L().Error("点赞失败", zap.Int("user_id", userID), zap.Int("post_id", postID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "点赞失败", err)
	}
	return nil
}

// DeleteLike 删除点赞边，边不存在时为无操作
func (r *PostRepo) DeleteLike(userID, postID int) error {
	_, err := r.db.Exec(`DELETE FROM likes WHERE user_id = ? AND post_id = ?`, userID, postID)
	if err != nil {
		zap.L().Error("取消点赞失败", zap.Int("user_id", userID), zap.Int("post_id", postID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "取消点赞失败", err)
	}
	return nil
}

// CreateBookmark 添加书签边，重复收藏返回冲突错误
func (r *PostRepo) CreateBookmark(userID, postID int) error {
	_, err := r.db.Exec(`INSERT INTO bookmarks (user_id, post_id, created_at) VALUES (?, ?, ?)`,
		userID, postID, time.Now())
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return errors.New(errors.ErrAlreadyBookmarked, "已经收藏过该帖子")
		}
		zap.L().Error("收藏失败", zap.Int("user_id", userID), zap.Int("post_id", postID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "收藏失败", err)
	}
	return nil
}

// DeleteBookmark 删除书签边，边不存在时为无操作
func (r *PostRepo) DeleteBookmark(userID, postID int) error {
	_, err := r.db.Exec(`DELETE FROM bookmarks WHERE user_id = ? AND post_id = ?`, userID, postID)
	if err != nil {
		zap.L().Error("取消收藏失败", zap.Int("user_id", userID), zap.Int("post_id", postID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "取消收藏失败", err)
	}
	return nil
}

// CreateComment 创建评论
func (r *PostRepo) CreateComment(comment *model.Comment) error {
	now := time.Now()
	result, err := r.db.Exec(`INSERT INTO comments (user_id, post_id, text, created_at) VALUES (?, ?, ?, ?)`,
		comment.UserID, comment.PostID, comment.Text, now)
	if err != nil {
		zap.L().Error("创建评论失败", zap.Int("post_id", comment.PostID), zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "创建评论失败", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "获取评论ID失败", err)
	}
	comment.ID = int(id)
	comment.CreatedAt = now
	return nil
}

// ListCommentsByPostID 返回帖子的评论，按创建时间倒序
func (r *PostRepo) ListCommentsByPostID(postID int) ([]*model.Comment, error) {
	rows, err := r.db.Query(`
		SELECT c.id, c.user_id, c.post_id, c.text, c.created_at,
			u.id, u.name, u.username, u.avatar_url
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ?
		ORDER BY c.created_at DESC`, postID)
	if err != nil {
		zap.L().Error("查询评论失败", zap.Int("post_id", postID), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询评论失败", err)
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		comment := &model.Comment{User: &model.User{}}
		err := rows.Scan(
			&comment.ID, &comment.UserID, &comment.PostID, &comment.Text, &comment.CreatedAt,
			&comment.User.ID, &comment.User.Name, &comment.User.Username, &comment.User.AvatarURL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描评论行失败", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// ListReadingList 返回用户最近的书签条目，按收藏时间倒序，最多 limit 条
func (r *PostRepo) ListReadingList(userID, limit int) ([]*model.ReadingListItem, error) {
	rows, err := r.db.Query(`
		SELECT b.id, b.created_at, `+feedColumns+`
		FROM bookmarks b
		JOIN posts p ON p.id = b.post_id
		JOIN users u ON u.id = p.author_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		zap.L().Error("查询阅读列表失败", zap.Int("user_id", userID), zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询阅读列表失败", err)
	}
	defer rows.Close()

	items := make([]*model.ReadingListItem, 0)
	for rows.Next() {
		item := &model.ReadingListItem{Post: &model.FeedPost{}}
		err := rows.Scan(
			&item.ID, &item.CreatedAt,
			&item.Post.ID, &item.Post.Slug, &item.Post.Title, &item.Post.Description,
			&item.Post.FeaturedImage, &item.Post.CreatedAt,
			&item.Post.Author.Name, &item.Post.Author.Username, &item.Post.Author.AvatarURL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "扫描阅读列表行失败", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "遍历阅读列表失败", err)
	}

	for _, item := range items {
		tags, err := r.tagsOfPost(item.Post.ID)
		if err != nil {
			return nil, err
		}
		item.Post.Tags = tags
	}
	return items, nil
}

// Count 返回帖子总数
func (r *PostRepo) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "统计帖子数失败", err)
	}
	return count, nil
}

// CountComments 返回评论总数
func (r *PostRepo) CountComments() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "统计评论数失败", err)
	}
	return count, nil
}
