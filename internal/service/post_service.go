package service

import (
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// ReadingListLimit 阅读列表展示的最新书签数
const ReadingListLimit = 4

// PostService 负责帖子的创建、查询与互动
type PostService struct {
	postRepo interfaces.PostRepository
	tagRepo  interfaces.TagRepository
}

// NewPostService 创建帖子服务
func NewPostService(postRepo interfaces.PostRepository, tagRepo interfaces.TagRepository) *PostService {
	return &PostService{postRepo: postRepo, tagRepo: tagRepo}
}

// CreatePostInput 创建帖子的输入参数
type CreatePostInput struct {
	Title       string `json:"title" binding:"required,min=5"`
	Description string `json:"description" binding:"required,min=10"`
	// 可选的自定义标识符，缺省时由标题生成
	Slug     string   `json:"slug" binding:"omitempty,slugfmt"`
	Text     string   `json:"text"`
	HTML     string   `json:"html"`
	TagIDs   []int    `json:"tag_ids"`
	TagNames []string `json:"tags"`
}

// CreatePost 创建帖子。标识符由标题生成，重复时返回冲突错误。
func (s *PostService) CreatePost(authorID int, input *CreatePostInput) (*model.Post, error) {
	postSlug := input.Slug
	if postSlug == "" {
		postSlug = slug.Make(input.Title)
	}

	post := &model.Post{
		AuthorID:    authorID,
		Title:       input.Title,
		Slug:        postSlug,
		Description: input.Description,
		Text:        input.Text,
		HTML:        input.HTML,
	}

	tagIDs := input.TagIDs
	for _, name := range input.TagNames {
		tag, err := s.tagRepo.FindByName(name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag = &model.Tag{Name: name, Slug: slug.Make(name)}
			if err := s.tagRepo.Create(tag); err != nil {
				return nil, err
			}
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := s.postRepo.Create(post, tagIDs); err != nil {
		return nil, err
	}

	zap.L().Info("帖子创建成功",
		zap.Int("post_id", post.ID), zap.Int("author_id", authorID), zap.String("slug", post.Slug))
	return post, nil
}

// GetPostBySlug 返回帖子详情，未找到时返回 nil 而不是错误
func (s *PostService) GetPostBySlug(slug string, viewerID *int) (*model.Post, error) {
	return s.postRepo.FindBySlug(slug, viewerID)
}

// GetPostsByAuthor 返回指定作者的帖子列表
func (s *PostService) GetPostsByAuthor(username string, viewerID *int) ([]*model.FeedPost, error) {
	return s.postRepo.ListPostsByAuthor(username, viewerID)
}

// UpdateFeatureImage 更新帖子题图，仅作者本人可操作
func (s *PostService) UpdateFeatureImage(userID, postID int, imageURL string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New(errors.ErrPostNotFound, "帖子不存在")
	}
	if post.AuthorID != userID {
		return errors.New(errors.ErrForbidden, "只有作者可以修改帖子题图")
	}

	return s.postRepo.UpdateFeaturedImage(postID, imageURL)
}

func (s *PostService) requirePost(postID int) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New(errors.ErrPostNotFound, "帖子不存在")
	}
	return nil
}

// LikePost 点赞帖子，重复点赞返回冲突错误
func (s *PostService) LikePost(userID, postID int) error {
	if err := s.requirePost(postID); err != nil {
		return err
	}
	return s.postRepo.CreateLike(userID, postID)
}

// UnlikePost 取消点赞，边不存在时同样返回成功
func (s *PostService) UnlikePost(userID, postID int) error {
	return s.postRepo.DeleteLike(userID, postID)
}

// BookmarkPost 收藏帖子，重复收藏返回冲突错误
func (s *PostService) BookmarkPost(userID, postID int) error {
	if err := s.requirePost(postID); err != nil {
		return err
	}
	return s.postRepo.CreateBookmark(userID, postID)
}

// UnbookmarkPost 取消收藏，边不存在时同样返回成功
func (s *PostService) UnbookmarkPost(userID, postID int) error {
	return s.postRepo.DeleteBookmark(userID, postID)
}

// CommentPost 发表评论
func (s *PostService) CommentPost(userID, postID int, text string) (*model.Comment, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{UserID: userID, PostID: postID, Text: text}
	if err := s.postRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComments 返回帖子的评论列表
func (s *PostService) GetComments(postID int) ([]*model.Comment, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}
	return s.postRepo.ListCommentsByPostID(postID)
}

// GetReadingList 返回用户最近收藏的帖子，最多 4 条
func (s *PostService) GetReadingList(userID int) ([]*model.ReadingListItem, error) {
	return s.postRepo.ListReadingList(userID, ReadingListLimit)
}
