package model

import "time"

// User 结构体表示用户模型
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // 密码哈希不应在JSON中暴露
	AvatarURL    string     `json:"avatar_url"`
	Bio          string     `json:"bio"`
	Role         string     `json:"role"`
	IsVerified   bool       `json:"is_verified"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}

// UserProfile 公开主页的用户投影，附带统计数据
type UserProfile struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url"`
	PostCount     int    `json:"post_count"`
	FollowerCount int    `json:"follower_count"`
}

// SuggestedUser 推荐关注的用户投影，不包含帖子内容
type SuggestedUser struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// FollowUser 关注者/关注列表中的用户投影
// FollowedByViewer 仅在提供了查看者身份时填充
type FollowUser struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Username         string `json:"username"`
	AvatarURL        string `json:"avatar_url"`
	FollowedByViewer *bool  `json:"followed_by_viewer,omitempty"`
}

// Follow 关注边记录，方向为 follower -> followed
type Follow struct {
	ID         int       `json:"id"`
	FollowerID int       `json:"follower_id"`
	FollowedID int       `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
