package user

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/middleware"
	"bloghub-backend/internal/service"
	"bloghub-backend/internal/util"
)

// Handler 用户相关接口的处理器
type Handler struct {
	userService       *service.UserService
	socialService     *service.SocialService
	suggestionService *service.SuggestionService
	blacklist         *util.TokenBlacklist
}

// NewHandler 创建用户处理器
func NewHandler(
	userService *service.UserService,
	socialService *service.SocialService,
	suggestionService *service.SuggestionService,
	blacklist *util.TokenBlacklist,
) *Handler {
	return &Handler{
		userService:       userService,
		socialService:     socialService,
		suggestionService: suggestionService,
		blacklist:         blacklist,
	}
}

// Register 处理用户注册请求
func (h *Handler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	user, err := h.userService.Register(&input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, user, "注册成功")
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求
func (h *Handler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	token, user, err := h.userService.Login(input.Email, input.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{"token": token, "user": user}, "登录成功")
}

// Me 返回当前登录用户信息
func (h *Handler) Me(c *gin.Context) {
	user, err := h.userService.GetMe(middleware.CurrentUserID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, user, "")
}

// Logout 将当前令牌加入黑名单，在过期前拒绝复用
func (h *Handler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token != "" {
		expiry := util.TokenExpiry(token)
		if expiry.IsZero() {
			expiry = time.Now().Add(24 * time.Hour)
		}
		h.blacklist.Add(token, expiry)
	}

	errors.HandleSuccess(c, nil, "已退出登录")
}

// RequestEmailVerification 发送邮箱验证邮件
func (h *Handler) RequestEmailVerification(c *gin.Context) {
	if err := h.userService.RequestEmailVerification(middleware.CurrentUserID(c)); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "验证邮件已发送")
}

// VerifyEmail 校验邮箱验证令牌
func (h *Handler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "缺少验证令牌"))
		return
	}

	if err := h.userService.VerifyEmail(token); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "邮箱验证成功")
}

type forgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword 请求密码重置邮件。无论邮箱是否注册都返回成功。
func (h *Handler) ForgotPassword(c *gin.Context) {
	var input forgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	if err := h.userService.RequestPasswordReset(input.Email); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "如果该邮箱已注册，重置邮件已发送")
}

type resetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword 使用重置令牌设置新密码
func (h *Handler) ResetPassword(c *gin.Context) {
	var input resetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	if err := h.userService.ResetPassword(input.Token, input.NewPassword); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "密码重置成功")
}

// DeleteAccount 注销当前账号（软删除）
func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.userService.DeleteAccount(middleware.CurrentUserID(c)); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "账号已注销")
}

// RefreshToken 刷新JWT令牌
func (h *Handler) RefreshToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "请求参数无效", err))
		return
	}

	token, err := util.RefreshToken(input.Token)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInvalidToken, "刷新令牌失败", err))
		return
	}

	errors.HandleSuccess(c, gin.H{"token": token}, "")
}
