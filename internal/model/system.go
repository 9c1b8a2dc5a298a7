package model

// SystemStats 系统统计数据
type SystemStats struct {
	TotalUsers    int `json:"total_users"`
	TotalPosts    int `json:"total_posts"`
	TotalComments int `json:"total_comments"`
	TotalTags     int `json:"total_tags"`
	TotalFollows  int `json:"total_follows"`
}
