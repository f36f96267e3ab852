package middleware

import (
	"net/http"

	"github.com/quillforge/quill/internal/config"
	"github.com/quillforge/quill/internal/infrastructure/redis"
	"github.com/quillforge/quill/pkg/httpext"
	"github.com/quillforge/quill/pkg/ratelimit"
	"github.com/rs/zerolog/log"
)

// RateLimit applies the configured window for limitKey per caller. When a
// Redis service is available the counters live there so several sidecar
// instances share a window; otherwise an in-memory limiter is used.
func RateLimit(limitKey string, redisService *redis.Service) func(http.Handler) http.Handler {
	cfg := config.GetRateLimitConfig(limitKey)
	limiter := ratelimit.NewLimiter(cfg.Window, cfg.MaxHits)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			// Use X-Forwarded-For if behind proxy, otherwise remote address
			ip := r.Header.Get("X-Forwarded-For")
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !allow(r, redisService, limiter, cfg, limitKey, ip) {
				log.Warn().Str("ip", ip).Str("key", limitKey).Msg("Rate limit exceeded")
				httpext.JsonError(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allow(r *http.Request, redisService *redis.Service, limiter *ratelimit.Limiter, cfg config.RateLimitConfig, limitKey, ip string) bool {
	if redisService == nil {
		return limiter.Allow(ip)
	}

	count, err := redisService.CountHit(r.Context(), "ratelimit:"+limitKey+":"+ip, cfg.Window)
	if err != nil {
		// Redis outage falls back to local counting rather than blocking callers
		return limiter.Allow(ip)
	}
	return count <= int64(cfg.MaxHits)
}
