package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
)

func TestCreatePostGeneratesSlugFromTitle(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("Create", mock.MatchedBy(func(p *model.Post) bool {
		return p.Slug == "understanding-go-channels" && p.AuthorID == 1
	}), []int(nil)).Return(nil)

	post, err := svc.CreatePost(1, &CreatePostInput{
		Title:       "Understanding Go Channels",
		Description: "A practical walkthrough",
	})

	assert.NoError(t, err)
	assert.Equal(t, "understanding-go-channels", post.Slug)
	postRepo.AssertExpectations(t)
}

func TestCreatePostReusesExistingTagByName(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	tagRepo.On("FindByName", "go").Return(&model.Tag{ID: 3, Name: "go", Slug: "go"}, nil)
	postRepo.On("Create", mock.Anything, []int{3}).Return(nil)

	_, err := svc.CreatePost(1, &CreatePostInput{
		Title:       "Concurrency Patterns",
		Description: "Fan-in and fan-out",
		TagNames:    []string{"go"},
	})

	assert.NoError(t, err)
	tagRepo.AssertNotCalled(t, "Create")
}

func TestUpdateFeatureImageRequiresOwnership(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("FindByID", 10).Return(&model.Post{ID: 10, AuthorID: 2}, nil)

	err := svc.UpdateFeatureImage(1, 10, "https://images.example.com/cover.jpg")

	appErr, ok := err.(*errors.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, errors.ErrForbidden, appErr.Code)
	}
	postRepo.AssertNotCalled(t, "UpdateFeaturedImage")
}

func TestUpdateFeatureImageUnknownPost(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("FindByID", 10).Return(nil, nil)

	err := svc.UpdateFeatureImage(1, 10, "https://images.example.com/cover.jpg")

	appErr, ok := err.(*errors.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, errors.ErrPostNotFound, appErr.Code)
	}
}

func TestLikePostDuplicateReturnsConflict(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("FindByID", 10).Return(&model.Post{ID: 10, AuthorID: 2}, nil)
	postRepo.On("CreateLike", 1, 10).Return(errors.New(errors.ErrAlreadyLiked, "已经点赞过该帖子"))

	err := svc.LikePost(1, 10)

	appErr, ok := err.(*errors.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, errors.ErrAlreadyLiked, appErr.Code)
	}
}

func TestUnlikePostIsIdempotent(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("DeleteLike", 1, 10).Return(nil)

	assert.NoError(t, svc.UnlikePost(1, 10))
	assert.NoError(t, svc.UnlikePost(1, 10))
}

func TestGetReadingListUsesFixedLimit(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	items := []*model.ReadingListItem{
		{ID: 4, Post: &model.FeedPost{ID: 40}},
		{ID: 3, Post: &model.FeedPost{ID: 30}},
	}
	postRepo.On("ListReadingList", 1, ReadingListLimit).Return(items, nil)

	got, err := svc.GetReadingList(1)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	postRepo.AssertExpectations(t)
}

func TestGetPostBySlugMissingReturnsNil(t *testing.T) {
	postRepo := new(mockPostRepo)
	tagRepo := new(mockTagRepo)
	svc := NewPostService(postRepo, tagRepo)

	postRepo.On("FindBySlug", "missing", (*int)(nil)).Return(nil, nil)

	post, err := svc.GetPostBySlug("missing", nil)

	// 未找到不是错误，调用方返回空数据
	assert.NoError(t, err)
	assert.Nil(t, post)
}
