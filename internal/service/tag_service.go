package service

import (
	gosimpleslug "github.com/gosimple/slug"
	"go.uber.org/zap"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
)

// TagService 管理全局标签
type TagService struct {
	tagRepo interfaces.TagRepository
}

// NewTagService 创建标签服务
func NewTagService(tagRepo interfaces.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// CreateTag 创建标签，名称全局唯一
func (s *TagService) CreateTag(name, description string) (*model.Tag, error) {
	existing, err := s.tagRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(errors.ErrTagExists, "标签已存在")
	}

	tag := &model.Tag{
		Name:        name,
		Slug:        gosimpleslug.Make(name),
		Description: description,
	}
	// 并发创建同名标签时靠唯一索引兜底
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	zap.L().Info("标签创建成功", zap.Int("tag_id", tag.ID), zap.String("name", tag.Name))
	return tag, nil
}

// ListTags 返回全部标签
func (s *TagService) ListTags() ([]*model.Tag, error) {
	return s.tagRepo.FindAll()
}
