package middleware

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"sim-registry/internal/core/ports"
	"sim-registry/pkg/apperror"
	"sim-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AttemptLimitRule defines the attempt budget for verification-style
// endpoints.
type AttemptLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultAttemptLimitRules returns the per-endpoint attempt budgets.
// Verify and swap are throttled harder than reads: each failed attempt
// leaks one bit of "does this identity match".
func DefaultAttemptLimitRules() map[string]AttemptLimitRule {
	return map[string]AttemptLimitRule{
		"verify":   {Limit: 10, Window: time.Minute},
		"swap":     {Limit: 5, Window: time.Minute},
		"register": {Limit: 10, Window: time.Hour},
	}
}

// AttemptLimiter creates a middleware that throttles attempts against
// one phone number. The key is the phone_number field of the JSON body,
// falling back to client IP when the body has none, so an attacker
// cannot spread guesses for one number across sessions.
func AttemptLimiter(store ports.VerifyAttemptStore, group string, rule AttemptLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := group + ":" + extractPhoneNumber(c)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("attempt limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrTooManyAttempts())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractPhoneNumber peeks at the request body for the phone_number
// field and restores the body for the handler.
func extractPhoneNumber(c *gin.Context) string {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return c.ClientIP()
	}
	c.Request.Body = io.NopCloser(strings.NewReader(string(body)))

	var probe struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.PhoneNumber == "" {
		return c.ClientIP()
	}
	return strings.ReplaceAll(probe.PhoneNumber, " ", "")
}
