package util

import (
	"bloghub-backend/config"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func GenerateToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ValidateToken(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return 0, errors.New("无效的用户ID")
		}
		return int(userID), nil
	}

	return 0, errors.New("无效的令牌")
}

// GeneratePurposeToken 生成一次性用途令牌（邮箱验证、密码重置）
func GeneratePurposeToken(userID int, purpose string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"purpose": purpose,
		"exp":     time.Now().Add(ttl).Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidatePurposeToken 校验一次性用途令牌，用途不匹配时拒绝
func ValidatePurposeToken(tokenString, purpose string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("无效的令牌")
	}
	if p, _ := claims["purpose"].(string); p != purpose {
		return 0, errors.New("令牌用途不匹配")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("无效的用户ID")
	}
	return int(userID), nil
}

// TokenExpiry 返回令牌的过期时间，解析失败时返回零值
func TokenExpiry(tokenString string) time.Time {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Time{}
}

func RefreshToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID := int(claims["user_id"].(float64))
		newToken, err := GenerateToken(userID)
		if err != nil {
			return "", err
		}
		return newToken, nil
	}

	return "", errors.New("invalid token")
}
