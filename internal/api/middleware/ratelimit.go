package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"resumeforge/internal/config"
	"resumeforge/pkg/models"
)

// clientLimiter tracks the token bucket for one client IP
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a per-client token bucket sized from configuration.
// Stale client entries are pruned as a side effect of lookups.
func RateLimit(cfg *config.Config) echo.MiddlewareFunc {
	if !cfg.RateLimit.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	perSecond := rate.Limit(float64(cfg.RateLimit.RequestsPerMinute) / 60.0)
	burst := cfg.RateLimit.RequestsPerMinute / 4
	if burst < 1 {
		burst = 1
	}

	var (
		mu       sync.Mutex
		clients  = make(map[string]*clientLimiter)
		lastScan = time.Now()
	)

	lookup := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if time.Since(lastScan) > 10*time.Minute {
			for addr, cl := range clients {
				if time.Since(cl.lastSeen) > 10*time.Minute {
					delete(clients, addr)
				}
			}
			lastScan = time.Now()
		}

		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(perSecond, burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		return cl.limiter
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !lookup(c.RealIP()).Allow() {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}
