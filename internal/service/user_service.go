package service

import (
	"fmt"
	"mime/multipart"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
	"bloghub-backend/internal/repository/interfaces"
	"bloghub-backend/internal/storage"
	"bloghub-backend/internal/util"
)

// maxAvatarBytes 头像解码后的大小上限
const maxAvatarBytes = 5 << 20

// UserService 负责用户注册、登录与资料维护
type UserService struct {
	userRepo     interfaces.UserRepository
	objectStore  storage.ObjectStorage
	emailService *EmailService
}

// NewUserService 创建用户服务
func NewUserService(userRepo interfaces.UserRepository, objectStore storage.ObjectStorage, emailService *EmailService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		objectStore:  objectStore,
		emailService: emailService,
	}
}

// RegisterInput 注册请求参数
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 注册新用户并异步发送欢迎邮件
func (s *UserService) Register(input *RegisterInput) (*model.User, error) {
	if len(input.Password) < 8 {
		return nil, errors.New(errors.ErrWeakPassword, "密码长度至少为8位")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "密码加密失败", err)
	}

	user := &model.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		go s.emailService.SendWelcomeEmail(user.Email, user.Name)
	}

	zap.L().Info("用户注册成功", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login 校验邮箱和密码，成功时返回JWT令牌
func (s *UserService) Login(email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New(errors.ErrInvalidCredentials, "邮箱或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New(errors.ErrInvalidCredentials, "邮箱或密码错误")
	}

	token, err := util.GenerateToken(user.ID)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInternal, "生成令牌失败", err)
	}

	zap.L().Info("用户登录成功", zap.Int("user_id", user.ID))
	return token, user, nil
}

// GetMe 返回当前登录用户
func (s *UserService) GetMe(userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "用户不存在")
	}
	return user, nil
}

// GetProfile 返回公开主页投影，未找到时返回 nil 而不是错误
func (s *UserService) GetProfile(username string) (*model.UserProfile, error) {
	return s.userRepo.GetProfileByUsername(username)
}

// UpdateProfileInput 资料更新参数，零值字段保持不变
type UpdateProfileInput struct {
	Name string `json:"name" binding:"omitempty,min=1,max=100"`
	Bio  string `json:"bio" binding:"omitempty,max=500"`
}

// UpdateProfile 更新当前用户的展示资料
func (s *UserService) UpdateProfile(userID int, input *UpdateProfileInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	zap.L().Info("用户资料更新", zap.Int("user_id", userID))
	return user, nil
}

// UpdateAvatar 解码 data URL 形式的头像，上传到对象存储并更新用户记录。
// 返回头像的公开访问地址。
func (s *UserService) UpdateAvatar(userID int, dataURL string) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	data, contentType, err := util.DecodeDataURL(dataURL)
	if err != nil {
		return "", errors.Wrap(errors.ErrBadRequest, "无效的头像数据", err)
	}
	if len(data) > maxAvatarBytes {
		return "", errors.New(errors.ErrBadRequest, "头像文件过大")
	}

	ext := extensionForContentType(contentType)
	path := fmt.Sprintf("avatars/%s", util.GenerateUniqueFilename("avatar"+ext))

	url, err := s.objectStore.UploadBytes(data, contentType, path)
	if err != nil {
		zap.L().Error("上传头像失败", zap.Int("user_id", userID), zap.Error(err))
		return "", errors.Wrap(errors.ErrInternal, "上传头像失败", err)
	}

	user.AvatarURL = url
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}

	zap.L().Info("用户头像更新成功", zap.Int("user_id", userID))
	return url, nil
}

const (
	purposeVerifyEmail   = "verify_email"
	purposeResetPassword = "reset_password"
)

// RequestEmailVerification 生成验证令牌并发送验证邮件
func (s *UserService) RequestEmailVerification(userID int) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	token, err := util.GeneratePurposeToken(user.ID, purposeVerifyEmail, 24*time.Hour)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "生成验证令牌失败", err)
	}

	if s.emailService != nil {
		go s.emailService.SendVerificationEmail(user.Email, user.Name, token)
	}
	return nil
}

// VerifyEmail 校验验证令牌并标记邮箱已验证
func (s *UserService) VerifyEmail(token string) error {
	userID, err := util.ValidatePurposeToken(token, purposeVerifyEmail)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidToken, "无效的验证令牌", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	user.IsVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	zap.L().Info("邮箱验证成功", zap.Int("user_id", userID))
	return nil
}

// RequestPasswordReset 发送密码重置邮件。
// 邮箱未注册时静默成功，不向调用方暴露账号是否存在。
func (s *UserService) RequestPasswordReset(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := util.GeneratePurposeToken(user.ID, purposeResetPassword, time.Hour)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "生成重置令牌失败", err)
	}

	if s.emailService != nil {
		go s.emailService.SendPasswordResetEmail(user.Email, token)
	}
	return nil
}

// ResetPassword 校验重置令牌并更新密码
func (s *UserService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.New(errors.ErrWeakPassword, "密码长度至少为8位")
	}

	userID, err := util.ValidatePurposeToken(token, purposeResetPassword)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidToken, "无效的重置令牌", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "密码加密失败", err)
	}
	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	zap.L().Info("密码重置成功", zap.Int("user_id", userID))
	return nil
}

// DeleteAccount 软删除当前用户账号
func (s *UserService) DeleteAccount(userID int) error {
	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}
	zap.L().Info("用户注销账号", zap.Int("user_id", userID))
	return nil
}

// UpdateAvatarFile 以 multipart 表单方式上传头像
func (s *UserService) UpdateAvatarFile(userID int, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	if file.Size > maxAvatarBytes {
		return "", errors.New(errors.ErrBadRequest, "头像文件过大")
	}

	path := fmt.Sprintf("avatars/%s", util.GenerateUniqueFilename(file.Filename))
	url, err := s.objectStore.UploadFile(file, path)
	if err != nil {
		zap.L().Error("上传头像失败", zap.Int("user_id", userID), zap.Error(err))
		return "", errors.Wrap(errors.ErrInternal, "上传头像失败", err)
	}

	user.AvatarURL = url
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}

	zap.L().Info("用户头像更新成功", zap.Int("user_id", userID))
	return url, nil
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
