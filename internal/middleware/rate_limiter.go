package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerMinute applies when RateLimiter is given a non-positive limit.
const DefaultRequestsPerMinute = 10

// RateLimiter limits requests per client IP for the routes it's applied to.
// A client may burst up to perMinute requests, then refills at perMinute/60 per second.
func RateLimiter(perMinute float64) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = DefaultRequestsPerMinute
	}
	burst := int(perMinute)
	if burst < 1 {
		burst = 1
	}

	config := middleware.RateLimiterConfig{
		// NewRateLimiterMemoryStore is a simple in-memory store suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perMinute / 60),
			Burst:     burst,
			ExpiresIn: 5 * time.Minute,
		}),

		// We identify clients by their real IP address.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "ip", identifier, "path", c.Path())
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
