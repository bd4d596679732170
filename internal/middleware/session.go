package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jfcamacho/vuelacol/internal/models"
	"github.com/jfcamacho/vuelacol/internal/ratelimit"
)

const (
	SessionCookie     = "vuelacol_sid"
	sessionContextKey = "session_id"
	sessionTTL        = 30 * 24 * time.Hour
)

// Session assigns every request a stable session ID carried in a cookie. The
// trip store keys all state by this ID; it is what makes the flow survive
// full page reloads.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				sid := uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    sid,
					Path:     "/",
					Expires:  time.Now().Add(sessionTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				c.Set(sessionContextKey, sid)
			} else {
				c.Set(sessionContextKey, cookie.Value)
			}

			return next(c)
		}
	}
}

// SessionID returns the session assigned by the Session middleware.
func SessionID(c echo.Context) string {
	if sid, ok := c.Get(sessionContextKey).(string); ok {
		return sid
	}
	return ""
}

// RateLimit rejects requests from sessions that exceed their budget.
func RateLimit(limiter *ratelimit.SessionLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(SessionID(c)) {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests, slow down",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}
