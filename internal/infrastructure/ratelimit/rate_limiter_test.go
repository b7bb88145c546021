package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(2, 1, time.Minute)

	ok, _ := bucket.Allow()
	assert.True(t, ok)
	ok, _ = bucket.Allow()
	assert.True(t, ok)

	ok, wait := bucket.Allow()
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
}

func TestLimiterIsolatesClientsAndActions(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 5; i++ {
		ok, _ := limiter.Allow("client-a", "join")
		assert.True(t, ok, "attempt %d", i)
	}
	ok, _ := limiter.Allow("client-a", "join")
	assert.False(t, ok, "join bucket is drained")

	ok, _ = limiter.Allow("client-b", "join")
	assert.True(t, ok, "other clients are unaffected")

	ok, _ = limiter.Allow("client-a", "message")
	assert.True(t, ok, "other actions are unaffected")
}
