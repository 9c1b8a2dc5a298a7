package model

import "time"

// Post 博客文章模型
type Post struct {
	ID            int       `json:"id"`
	AuthorID      int       `json:"author_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Text          string    `json:"text,omitempty"`
	HTML          string    `json:"html,omitempty"`
	FeaturedImage string    `json:"featured_image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Author        *User     `json:"author,omitempty"`
	Tags          []*Tag    `json:"tags,omitempty"`
	// 查看者注解：匿名访问时完全省略，而不是返回 false
	IsLiked      *bool `json:"is_liked,omitempty"`
	IsBookmarked *bool `json:"is_bookmarked,omitempty"`
}

// Tag 标签模型，名称和slug全局唯一
type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// PostAuthor 信息流中的作者投影
type PostAuthor struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// FeedPost 信息流中的帖子投影，不包含正文
type FeedPost struct {
	ID            int        `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	FeaturedImage string     `json:"featured_image"`
	CreatedAt     time.Time  `json:"created_at"`
	Author        PostAuthor `json:"author"`
	Tags          []*Tag     `json:"tags"`
	// 查看者注解，匿名时省略
	IsLiked      *bool `json:"is_liked,omitempty"`
	IsBookmarked *bool `json:"is_bookmarked,omitempty"`
}

// FeedPage 游标分页的一页信息流
// NextCursor 为空表示已是最后一页
type FeedPage struct {
	Posts      []*FeedPost `json:"posts"`
	NextCursor *int        `json:"next_cursor,omitempty"`
}

// Like 点赞边记录，(user_id, post_id) 唯一
type Like struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	PostID    int       `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Bookmark 书签边记录，(user_id, post_id) 唯一
type Bookmark struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	PostID    int       `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment 评论模型，创建后不可修改
type Comment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	PostID    int       `json:"post_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `json:"user,omitempty"`
}

// ReadingListItem 阅读列表条目，帖子投影附带收藏时间
type ReadingListItem struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Post      *FeedPost `json:"post"`
}
