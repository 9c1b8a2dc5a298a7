package interfaces

import "bloghub-backend/internal/model"

// UserRepository 接口定义了用户仓库应该实现的方法
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	// GetProfileByUsername 返回公开主页投影，附带帖子数和粉丝数；未找到时返回 nil
	GetProfileByUsername(username string) (*model.UserProfile, error)
	Update(user *model.User) error
	Delete(id int) error
	Count() (int, error)
	FindAll(page, pageSize int) ([]*model.User, error)
}
