package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsWithinLimit(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 5, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		info := l.Allow("client-a")
		assert.True(t, info.Allowed, "request %d should be allowed", i+1)
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 2, Window: time.Hour})
	defer l.Stop()

	assert.True(t, l.Allow("client-a").Allowed)
	assert.True(t, l.Allow("client-a").Allowed)

	info := l.Allow("client-a")
	assert.False(t, info.Allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Equal(t, 0, info.Remaining)
	assert.False(t, info.ResetTime.IsZero())
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Hour})
	defer l.Stop()

	assert.True(t, l.Allow("client-a").Allowed)
	assert.False(t, l.Allow("client-a").Allowed)
	assert.True(t, l.Allow("client-b").Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Hour})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("client-a").Allowed)
	}
}

func TestLimiter_NilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	info := l.Allow("client-a")
	assert.True(t, info.Allowed)
	assert.Equal(t, DefaultConfig().Limit, info.Limit)
}
