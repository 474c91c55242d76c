package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewLoginLimiter(6, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("alice"), "attempt %d", i+1)
	}
	assert.False(t, limiter.Allow("alice"))
	assert.True(t, limiter.Allow("bob"), "limits are per username")
}

func TestLoginLimiter_RefillsOverTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLoginLimiter(6, 1).(*LoginLimiter)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))

	now = now.Add(10 * time.Second)
	assert.True(t, limiter.Allow("alice"))
}

func TestLoginLimiter_Reset(t *testing.T) {
	limiter := NewLoginLimiter(6, 1)

	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))

	limiter.Reset("alice")
	assert.True(t, limiter.Allow("alice"))
}

func TestLoginLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLoginLimiter(6, 3).(*LoginLimiter)
	limiter.now = func() time.Time { return now }

	limiter.Allow("alice")
	now = now.Add(2 * time.Minute)
	limiter.Allow("bob")
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, limiter.Cleanup(3*time.Minute))
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "bob")
}
