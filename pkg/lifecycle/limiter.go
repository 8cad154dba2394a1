package lifecycle

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-vehicle rate limiters: vehicle_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(vehicleID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[vehicleID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[vehicleID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(vehicleID string, vehicleRate rate.Limit, vehicleBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[vehicleID] = rate.NewLimiter(vehicleRate, vehicleBurst)
}
