package service

import (
	"github.com/stretchr/testify/mock"

	"bloghub-backend/internal/model"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(post *model.Post, tagIDs []int) error {
	args := m.Called(post, tagIDs)
	return args.Error(0)
}

func (m *mockPostRepo) FindByID(id int) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostRepo) FindBySlug(slug string, viewerID *int) (*model.Post, error) {
	args := m.Called(slug, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostRepo) UpdateFeaturedImage(postID int, imageURL string) error {
	args := m.Called(postID, imageURL)
	return args.Error(0)
}

func (m *mockPostRepo) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockPostRepo) ListFeedPosts(cursor *int, limit int, viewerID *int) ([]*model.FeedPost, error) {
	args := m.Called(cursor, limit, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FeedPost), args.Error(1)
}

func (m *mockPostRepo) ListPostsByAuthor(username string, viewerID *int) ([]*model.FeedPost, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FeedPost), args.Error(1)
}

func (m *mockPostRepo) CreateLike(userID, postID int) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *mockPostRepo) DeleteLike(userID, postID int) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *mockPostRepo) CreateBookmark(userID, postID int) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *mockPostRepo) DeleteBookmark(userID, postID int) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *mockPostRepo) CreateComment(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *mockPostRepo) ListCommentsByPostID(postID int) ([]*model.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockPostRepo) ListReadingList(userID, limit int) ([]*model.ReadingListItem, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ReadingListItem), args.Error(1)
}

func (m *mockPostRepo) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *mockPostRepo) CountComments() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type mockSocialRepo struct {
	mock.Mock
}

func (m *mockSocialRepo) CreateFollow(followerID, followedID int) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *mockSocialRepo) DeleteFollow(followerID, followedID int) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *mockSocialRepo) IsFollowing(followerID, followedID int) (bool, error) {
	args := m.Called(followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSocialRepo) ListFollowers(userID int, viewerID *int) ([]*model.FollowUser, error) {
	args := m.Called(userID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FollowUser), args.Error(1)
}

func (m *mockSocialRepo) ListFollowing(userID int) ([]*model.FollowUser, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FollowUser), args.Error(1)
}

func (m *mockSocialRepo) CountFollows() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *mockSocialRepo) RecentLikedTagNames(userID, limit int) ([]string, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockSocialRepo) RecentBookmarkedTagNames(userID, limit int) ([]string, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockSocialRepo) FindUsersEngagedWithTags(tagNames []string, excludeUserID, limit int) ([]*model.SuggestedUser, error) {
	args := m.Called(tagNames, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SuggestedUser), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) GetProfileByUsername(username string) (*model.UserProfile, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *mockUserRepo) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockUserRepo) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *mockUserRepo) FindAll(page, pageSize int) ([]*model.User, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) Create(tag *model.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *mockTagRepo) FindByName(name string) (*model.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *mockTagRepo) FindAll() ([]*model.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Tag), args.Error(1)
}

func (m *mockTagRepo) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
