package service

import (
	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// SocialService 管理用户之间的关注关系
type SocialService struct {
	socialRepo interfaces.SocialRepository
	userRepo   interfaces.UserRepository
}

// NewSocialService 创建社交关系服务
func NewSocialService(socialRepo interfaces.SocialRepository, userRepo interfaces.UserRepository) *SocialService {
	return &SocialService{socialRepo: socialRepo, userRepo: userRepo}
}

// Follow 关注用户。关注自己被拒绝，重复关注为无操作。
func (s *SocialService) Follow(followerID, followedID int) error {
	if followerID == followedID {
		return errors.New(errors.ErrSelfFollow, "不能关注自己")
	}

	target, err := s.userRepo.FindByID(followedID)
	if err != nil {
		return err
	}
	if target == nil {
		return errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	if err := s.socialRepo.CreateFollow(followerID, followedID); err != nil {
		return err
	}

	zap.L().Info("用户关注成功",
		zap.Int("follower_id", followerID), zap.Int("followed_id", followedID))
	return nil
}

// Unfollow 取消关注。边不存在时同样返回成功。
func (s *SocialService) Unfollow(followerID, followedID int) error {
	if err := s.socialRepo.DeleteFollow(followerID, followedID); err != nil {
		return err
	}

	zap.L().Info("用户取消关注",
		zap.Int("follower_id", followerID), zap.Int("followed_id", followedID))
	return nil
}

// GetFollowers 返回指定用户的粉丝列表，附带查看者的关注注解
func (s *SocialService) GetFollowers(username string, viewerID *int) ([]*model.FollowUser, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "用户不存在")
	}
	return s.socialRepo.ListFollowers(user.ID, viewerID)
}

// GetFollowing 返回指定用户关注的人
func (s *SocialService) GetFollowing(username string) ([]*model.FollowUser, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "用户不存在")
	}
	return s.socialRepo.ListFollowing(user.ID)
}
