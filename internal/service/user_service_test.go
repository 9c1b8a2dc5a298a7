package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/model"
)

func TestRegisterRejectsWeakPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, nil, nil)

	_, err := svc.Register(&RegisterInput{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	appErr, ok := err.(*errors.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, errors.ErrWeakPassword, appErr.Code)
	}
	userRepo.AssertNotCalled(t, "Create")
}

func TestRegisterHashesPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, nil, nil)

	userRepo.On("Create", mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "alice" && u.PasswordHash != "supersecret123"
	})).Return(nil)

	user, err := svc.Register(&RegisterInput{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret123",
	})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret123")))
	assert.Equal(t, "user", user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, nil, nil)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", "alice@example.com").Return(&model.User{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, _, err := svc.Login("alice@example.com", "wrong-password")

	appErr, ok := err.(*errors.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, errors.ErrInvalidCredentials, appErr.Code)
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, nil, nil)

	userRepo.On("FindByEmail", "ghost@example.com").Return(nil, nil)

	_, _, err := svc.Login("ghost@example.com", "whatever")

	// 未注册邮箱和密码错误返回同样的错误，避免账号枚举
	appErr, ok := err.(*errors.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, errors.ErrInvalidCredentials, appErr.Code)
	}
}

func TestGetProfileMissingReturnsNil(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, nil, nil)

	userRepo.On("GetProfileByUsername", "ghost").Return(nil, nil)

	profile, err := svc.GetProfile("ghost")

	assert.NoError(t, err)
	assert.Nil(t, profile)
}
