package interfaces

import "bloghub-backend/internal/model"

// TagRepository 接口定义了标签仓库应该实现的方法
type TagRepository interface {
	Create(tag *model.Tag) error
	// FindByName 按名称查找标签，未找到时返回 nil
	FindByName(name string) (*model.Tag, error)
	FindAll() ([]*model.Tag, error)
	Count() (int, error)
}
