package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentRateLimiterAllowsBurstThenDenies(t *testing.T) {
	limiter := NewCommentRateLimiter()
	ip := "203.0.113.7"

	for i := 1; i <= 3; i++ {
		assert.True(t, limiter.Allow(ip), "burst request %d should be allowed", i)
	}
	assert.False(t, limiter.Allow(ip), "request beyond the burst should be denied")
}

func TestCommentRateLimiterIsolatesRemoteAddresses(t *testing.T) {
	limiter := NewCommentRateLimiter()

	for i := 0; i < 4; i++ {
		limiter.Allow("203.0.113.7")
	}

	// A different visitor gets a fresh allowance.
	assert.True(t, limiter.Allow("198.51.100.2"))
}
