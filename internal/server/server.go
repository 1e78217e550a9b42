package server

import (
	"net/http"
	"time"
)

// Options configures the HTTP server.
type Options struct {
	RedisAddr         string
	CacheTTL          time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

// DefaultOptions returns the server defaults: in-memory cache, 60 requests
// per client per minute.
func DefaultOptions() Options {
	return Options{
		CacheTTL:          time.Hour,
		RateLimitCapacity: 60,
		RateLimitWindow:   time.Minute,
	}
}

// NewMux wires the handlers into a rate-limited ServeMux and returns the mux
// together with the limiter so the caller can stop its cleanup loop.
func NewMux(h *Handlers, opts Options) (*http.ServeMux, *RateLimiter) {
	limiter := NewRateLimiter(opts.RateLimitCapacity, opts.RateLimitWindow)

	mux := http.NewServeMux()
	routes := map[string]http.HandlerFunc{
		"/v1/project":        h.Project,
		"/v1/project/series": h.ProjectSeries,
		"/v1/amortize":       h.Amortize,
		"/v1/progress":       h.Progress,
		"/v1/health-score":   h.HealthScore,
		"/v1/compare":        h.Compare,
	}
	for path, handler := range routes {
		mux.Handle(path, RateLimitMiddleware(limiter, handler))
	}

	return mux, limiter
}

// CacheFromOptions picks redis when an address is configured, otherwise the
// in-process cache.
func CacheFromOptions(opts Options) Cache {
	if opts.RedisAddr != "" {
		return NewRedisCache(opts.RedisAddr, opts.CacheTTL)
	}
	return NewMemoryCache()
}
