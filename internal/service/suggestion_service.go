package service

import (
	"go.uber.org/zap"

	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

const (
	// interestWindowSize 提取兴趣时回溯的点赞/收藏条数
	interestWindowSize = 10
	// suggestionLimit 一次返回的推荐用户数上限
	suggestionLimit = 4
)

// SuggestionService 基于用户近期互动的标签推荐可关注的用户
type SuggestionService struct {
	socialRepo interfaces.SocialRepository
}

// NewSuggestionService 创建推荐服务
func NewSuggestionService(socialRepo interfaces.SocialRepository) *SuggestionService {
	return &SuggestionService{socialRepo: socialRepo}
}

// interestTags 提取用户的兴趣标签：最近 10 次点赞和最近 10 次收藏
// 涉及的帖子标签拼接在一起。列表保留重复，只用作存在性过滤。
func (s *SuggestionService) interestTags(userID int) ([]string, error) {
	liked, err := s.socialRepo.RecentLikedTagNames(userID, interestWindowSize)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.socialRepo.RecentBookmarkedTagNames(userID, interestWindowSize)
	if err != nil {
		return nil, err
	}
	return append(liked, bookmarked...), nil
}

// GetSuggestions 返回推荐关注的用户。
// 没有任何兴趣信号的用户得到空列表，不会退回到全站热门之类的兜底。
func (s *SuggestionService) GetSuggestions(userID int) ([]*model.SuggestedUser, error) {
	tags, err := s.interestTags(userID)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return []*model.SuggestedUser{}, nil
	}

	users, err := s.socialRepo.FindUsersEngagedWithTags(tags, userID, suggestionLimit)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("生成用户推荐",
		zap.Int("user_id", userID),
		zap.Int("interest_tags", len(tags)),
		zap.Int("suggestions", len(users)))
	return users, nil
}
