package service

import (
	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// AdminService 提供后台管理所需的统计与用户管理能力
type AdminService struct {
	userRepo   interfaces.UserRepository
	postRepo   interfaces.PostRepository
	tagRepo    interfaces.TagRepository
	socialRepo interfaces.SocialRepository
}

// NewAdminService 创建管理服务
func NewAdminService(
	userRepo interfaces.UserRepository,
	postRepo interfaces.PostRepository,
	tagRepo interfaces.TagRepository,
	socialRepo interfaces.SocialRepository,
) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		tagRepo:    tagRepo,
		socialRepo: socialRepo,
	}
}

// GetStats 汇总全站统计数据
func (s *AdminService) GetStats() (*model.SystemStats, error) {
	stats := &model.SystemStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.postRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalComments, err = s.postRepo.CountComments(); err != nil {
		return nil, err
	}
	if stats.TotalTags, err = s.tagRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalFollows, err = s.socialRepo.CountFollows(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ListUsers 分页返回用户列表
func (s *AdminService) ListUsers(page, pageSize int) ([]*model.User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.userRepo.FindAll(page, pageSize)
}

// UpdateUserRole 调整用户角色，只允许 user / admin
func (s *AdminService) UpdateUserRole(userID int, role string) error {
	if role != "user" && role != "admin" {
		return errors.New(errors.ErrBadRequest, "无效的角色")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	zap.L().Info("用户角色更新", zap.Int("user_id", userID), zap.String("role", role))
	return nil
}

// DeleteUser 软删除用户
func (s *AdminService) DeleteUser(userID int) error {
	return s.userRepo.Delete(userID)
}

// DeletePost 删除帖子及其关联数据
func (s *AdminService) DeletePost(postID int) error {
	return s.postRepo.Delete(postID)
}
