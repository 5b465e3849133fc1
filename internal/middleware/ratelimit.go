package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a redis-backed fixed window counter shared by every
// instance of the service. A key's first hit sets the window expiry;
// hits beyond the limit inside the window are rejected.
type RateLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// Limit keys the window by client IP. Redis being down fails open:
// shedding writes is preferable to rejecting all of them.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := GetIP(r)
		if err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		key := fmt.Sprintf("%s:%s", rl.prefix, ip)
		count, err := rl.rdb.Incr(r.Context(), key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "err", err)
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			rl.rdb.Expire(r.Context(), key, rl.window)
		}
		if count > int64(rl.limit) {
			http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetIP extracts the real client IP from RemoteAddr
// Does NOT trust X-Real-IP or X-Forwarded-For headers (no reverse proxy)
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// Fallback: if RemoteAddr doesn't have port, use it directly
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}
