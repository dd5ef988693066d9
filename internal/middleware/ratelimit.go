package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit enforces a per-client-IP request budget. Each IP gets its own
// token bucket refilled at limit/per with a burst of limit; idle buckets
// are dropped after two windows to bound the map.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	type entry struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	if limit <= 0 {
		limit = 1
	}
	var mu sync.Mutex
	entries := make(map[string]*entry)
	every := rate.Every(per / time.Duration(limit))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIPForRateLimit(r)
			now := time.Now()
			mu.Lock()
			e, ok := entries[ip]
			if !ok {
				e = &entry{limiter: rate.NewLimiter(every, limit)}
				entries[ip] = e
			}
			e.lastSeen = now
			if len(entries) > 1024 {
				for k, v := range entries {
					if now.Sub(v.lastSeen) > 2*per {
						delete(entries, k)
					}
				}
			}
			allowed := e.limiter.Allow()
			mu.Unlock()
			if !allowed {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIPForRateLimit(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}

	return r.RemoteAddr
}
