package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bloghub-backend/internal/model"
)

func TestGetSuggestionsConcatenatesLikedAndBookmarkedTags(t *testing.T) {
	repo := new(mockSocialRepo)
	svc := NewSuggestionService(repo)

	repo.On("RecentLikedTagNames", 1, interestWindowSize).Return([]string{"go", "databases"}, nil)
	repo.On("RecentBookmarkedTagNames", 1, interestWindowSize).Return([]string{"go", "testing"}, nil)
	// 标签列表保留重复，点赞和收藏的标签直接拼接
	expected := []string{"go", "databases", "go", "testing"}
	suggested := []*model.SuggestedUser{
		{ID: 2, Username: "alice"},
		{ID: 3, Username: "bob"},
	}
	repo.On("FindUsersEngagedWithTags", expected, 1, suggestionLimit).Return(suggested, nil)

	users, err := svc.GetSuggestions(1)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	repo.AssertExpectations(t)
}

func TestGetSuggestionsNoInterestSignalsReturnsEmpty(t *testing.T) {
	repo := new(mockSocialRepo)
	svc := NewSuggestionService(repo)

	repo.On("RecentLikedTagNames", 1, interestWindowSize).Return([]string{}, nil)
	repo.On("RecentBookmarkedTagNames", 1, interestWindowSize).Return([]string{}, nil)

	users, err := svc.GetSuggestions(1)

	assert.NoError(t, err)
	assert.Empty(t, users)
	// 没有兴趣信号时不应查询候选用户
	repo.AssertNotCalled(t, "FindUsersEngagedWithTags")
}

func TestGetSuggestionsBookmarksAloneProduceSignals(t *testing.T) {
	repo := new(mockSocialRepo)
	svc := NewSuggestionService(repo)

	repo.On("RecentLikedTagNames", 5, interestWindowSize).Return([]string{}, nil)
	repo.On("RecentBookmarkedTagNames", 5, interestWindowSize).Return([]string{"rust"}, nil)
	repo.On("FindUsersEngagedWithTags", []string{"rust"}, 5, suggestionLimit).
		Return([]*model.SuggestedUser{{ID: 9, Username: "carol"}}, nil)

	users, err := svc.GetSuggestions(5)

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	repo.AssertExpectations(t)
}

func TestGetSuggestionsExcludesRequesterViaRepo(t *testing.T) {
	repo := new(mockSocialRepo)
	svc := NewSuggestionService(repo)

	repo.On("RecentLikedTagNames", 8, interestWindowSize).Return([]string{"go"}, nil)
	repo.On("RecentBookmarkedTagNames", 8, interestWindowSize).Return([]string{}, nil)
	repo.On("FindUsersEngagedWithTags", []string{"go"}, 8, suggestionLimit).
		Return([]*model.SuggestedUser{}, nil)

	users, err := svc.GetSuggestions(8)

	assert.NoError(t, err)
	assert.Empty(t, users)
	repo.AssertExpectations(t)
}
