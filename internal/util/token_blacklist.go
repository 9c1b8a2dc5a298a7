package util

import (
	"sync"
	"time"
)

// TokenBlacklist 内存中的令牌黑名单，登出的令牌在过期前拒绝使用
type TokenBlacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

// NewTokenBlacklist 创建令牌黑名单
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{tokens: make(map[string]time.Time)}
}

// Add 将令牌加入黑名单，expiresAt 之后条目可被清理
func (b *TokenBlacklist) Add(token string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens[token] = expiresAt
	// 顺带清理已过期的条目，避免黑名单无限增长
	now := time.Now()
	for t, exp := range b.tokens {
		if exp.Before(now) {
			delete(b.tokens, t)
		}
	}
}

// Contains 判断令牌是否在黑名单中
func (b *TokenBlacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	exp, ok := b.tokens[token]
	if !ok {
		return false
	}
	return exp.After(time.Now())
}
