package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	apperror "gopets/internal/errors"
	"gopets/internal/pkg/cache"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/logger"
)

const rateLimitMessage = "Limite de requisições excedido. Tente novamente mais tarde."

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// RateLimiter aplica uma janela fixa por IP usando contadores no cache.
// Se o cache falhar, a requisição passa (fail-open) e a falha vai para o log.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)

			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			count, err := client.IncrWindow(ctx, key, window)
			cancel()

			if err != nil {
				log.Warn("Rate limiter indisponível, liberando requisição", map[string]interface{}{
					"error": err.Error(),
				})
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				httpx.WriteError(w, apperror.NewRateLimitError(rateLimitMessage))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LocalRateLimiter é usado quando não há Redis: um token bucket em memória por IP.
// Buckets parados há mais de uma janela já estariam cheios e são descartados.
type LocalRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*localBucket
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLocalRateLimiter distribui `limit` requisições ao longo de `window`.
func NewLocalRateLimiter(limit int, window time.Duration) *LocalRateLimiter {
	return &LocalRateLimiter{
		limiters:  make(map[string]*localBucket),
		limit:     rate.Limit(float64(limit) / window.Seconds()),
		burst:     limit,
		idleTTL:   window,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *LocalRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	b, ok := l.limiters[ip]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = b
	}
	b.lastSeen = now
	return b.limiter
}

// sweep remove os buckets ociosos; chamado com mu travado.
func (l *LocalRateLimiter) sweep(now time.Time) {
	for ip, b := range l.limiters {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

// Len devolve quantos IPs estão sendo acompanhados.
func (l *LocalRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware recusa com 429 quando o bucket do IP está vazio.
func (l *LocalRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.get(clientIP(r)).Allow() {
			httpx.WriteError(w, apperror.NewRateLimitError(rateLimitMessage))
			return
		}
		next.ServeHTTP(w, r)
	})
}
