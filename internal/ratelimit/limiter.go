package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// SessionLimiter rate-limits API calls per browser session so a scripted
// client cannot hammer the generator or churn trip state.
type SessionLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewSessionLimiter(config RateLimitConfig) *SessionLimiter {
	return &SessionLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewSessionLimiterWithDefaults() *SessionLimiter {
	return NewSessionLimiter(DefaultConfig())
}

func (s *SessionLimiter) GetLimiter(sessionID string) *rate.Limiter {
	s.mu.RLock()
	limiter, exists := s.limiters[sessionID]
	s.mu.RUnlock()

	if exists {
		return limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if limiter, exists = s.limiters[sessionID]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(s.defaults.RequestsPerSecond), s.defaults.BurstSize)
	s.limiters[sessionID] = limiter
	return limiter
}

// Allow reports whether the session may make another request right now.
func (s *SessionLimiter) Allow(sessionID string) bool {
	return s.GetLimiter(sessionID).Allow()
}

func (s *SessionLimiter) Wait(ctx context.Context, sessionID string) error {
	return s.GetLimiter(sessionID).Wait(ctx)
}
