package transport

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/expenzo/expenzo-backend/cmd/config"
	"github.com/expenzo/expenzo-backend/constant"
	redisrepo "github.com/expenzo/expenzo-backend/repository/redis"
	"github.com/expenzo/expenzo-backend/utils/errors"
	"github.com/expenzo/expenzo-backend/utils/logger"
)

// RateLimiter enforces fixed-window request limits keyed by client IP.
// Counters live in Redis when available so limits hold across replicas;
// otherwise an in-process fallback keeps single-instance deployments
// protected.
type RateLimiter struct {
	redisRepo redisrepo.Repository

	mu      sync.Mutex
	windows map[string]*localWindow
}

type localWindow struct {
	count   int64
	resetAt time.Time
}

func NewRateLimiter(redisRepo redisrepo.Repository) *RateLimiter {
	return &RateLimiter{
		redisRepo: redisRepo,
		windows:   make(map[string]*localWindow),
	}
}

// Middleware applies a limit tier to every request passing through a router.
func (l *RateLimiter) Middleware(name string, tier config.LimitTier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(r, name, tier) {
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Wrap applies a limit tier to a single handler, for endpoints with a
// stricter budget than the router they sit on.
func (l *RateLimiter) Wrap(name string, tier config.LimitTier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(r, name, tier) {
			writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
			return
		}
		next(w, r)
	}
}

func (l *RateLimiter) allow(r *http.Request, name string, tier config.LimitTier) bool {
	if tier.Max <= 0 {
		return true
	}

	key := fmt.Sprintf("ratelimit:%s:%s", name, clientIP(r))

	if l.redisRepo != nil && l.redisRepo.Available() {
		count, err := l.redisRepo.IncrWindow(r.Context(), key, tier.Window)
		if err != nil {
			// Counting must not take the API down with it.
			logger.Warn("[RateLimiter] redis unavailable, falling back to local counters", zap.String("error", err.Error()))
		} else {
			return count <= int64(tier.Max)
		}
	}

	return l.allowLocal(key, tier)
}

func (l *RateLimiter) allowLocal(key string, tier config.LimitTier) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	win, ok := l.windows[key]
	if !ok || now.After(win.resetAt) {
		l.windows[key] = &localWindow{count: 1, resetAt: now.Add(tier.Window)}
		return true
	}

	win.count++
	return win.count <= int64(tier.Max)
}

// clientIP prefers the first X-Forwarded-For hop so limits key on the real
// client behind a reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
