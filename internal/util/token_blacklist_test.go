package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBlacklist(t *testing.T) {
	bl := NewTokenBlacklist()

	assert.False(t, bl.Contains("token-a"))

	bl.Add("token-a", time.Now().Add(time.Hour))
	assert.True(t, bl.Contains("token-a"))
	assert.False(t, bl.Contains("token-b"))
}

func TestTokenBlacklistExpiredEntriesIgnored(t *testing.T) {
	bl := NewTokenBlacklist()

	bl.Add("stale", time.Now().Add(-time.Minute))
	assert.False(t, bl.Contains("stale"))

	// 后续写入会清理已过期的条目
	bl.Add("fresh", time.Now().Add(time.Hour))
	assert.True(t, bl.Contains("fresh"))
}
