package auth_test

import (
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := auth.GenerateOTP()
		assert.NoError(t, err)
		assert.Len(t, code, auth.OTPLength)
		assert.Regexp(t, `^\d{6}$`, code)
		seen[code] = true
	}
	// 50 draws from a million-value space should not all collide
	assert.Greater(t, len(seen), 1)
}

func TestVerifyOTP(t *testing.T) {
	now := time.Now()
	future := now.Add(5 * time.Minute)
	past := now.Add(-1 * time.Minute)

	t.Run("matching code within ttl", func(t *testing.T) {
		expired, matched := auth.VerifyOTP("123456", "123456", &future, now)
		assert.False(t, expired)
		assert.True(t, matched)
	})

	t.Run("wrong code within ttl", func(t *testing.T) {
		expired, matched := auth.VerifyOTP("123456", "654321", &future, now)
		assert.False(t, expired)
		assert.False(t, matched)
	})

	t.Run("expiry wins over a matching code", func(t *testing.T) {
		expired, matched := auth.VerifyOTP("123456", "123456", &past, now)
		assert.True(t, expired)
		assert.False(t, matched)
	})

	t.Run("nil expiry counts as expired", func(t *testing.T) {
		expired, matched := auth.VerifyOTP("123456", "123456", nil, now)
		assert.True(t, expired)
		assert.False(t, matched)
	})

	t.Run("no stored code never matches", func(t *testing.T) {
		expired, matched := auth.VerifyOTP("", "123456", &future, now)
		assert.False(t, expired)
		assert.False(t, matched)
	})
}
