package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/utils"
)

// Counter is the subset of the redis cache the rate limiter needs
type Counter interface {
	IncrWithExpire(ctx context.Context, namespace, key string, window time.Duration) (int64, error)
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error
	GetTTL(ctx context.Context, namespace, key string) (time.Duration, error)
}

// RateLimiter is a fixed-window limiter keyed by client IP. Once a client
// exceeds limit within window it is blocked for blockDuration. Counter errors
// fail open.
func RateLimiter(counter Counter, limit int, window, blockDuration time.Duration, namespace string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "ip:" + utils.ClientIP(r)
			blockKey := key + ":blocked"

			if blocked, _ := counter.Get(ctx, namespace, blockKey); blocked == "1" {
				ttl, _ := counter.GetTTL(ctx, namespace, blockKey)
				if ttl <= 0 {
					ttl = blockDuration
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Too Many Requests", "Try again in "+ttl.Round(time.Second).String())
				return
			}

			count, err := counter.IncrWithExpire(ctx, namespace, key, window)
			if err != nil {
				logger.Warn("rate limiter unavailable", zap.String("namespace", namespace), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				if err := counter.Set(ctx, namespace, blockKey, "1", blockDuration); err != nil {
					logger.Warn("rate limiter block failed", zap.String("namespace", namespace), zap.Error(err))
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(blockDuration.Seconds())))
				utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Too Many Requests", "Blocked for "+blockDuration.String())
				return
			}

			ttl, _ := counter.GetTTL(ctx, namespace, key)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-int(count)))
			w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(ttl.Seconds())))

			next.ServeHTTP(w, r)
		})
	}
}
