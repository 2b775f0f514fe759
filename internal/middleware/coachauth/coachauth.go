package coachauth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gruntled/assessment-backend/internal/metrics"
)

// QueryParam carries the coach access token, matching the original URL
// scheme (?coach=<token>).
const QueryParam = "coach"

type Config struct {
	// AccessToken is a pre-shared secret. This gate is a casual deterrent
	// only; it is NOT authentication and must not be treated as a security
	// boundary.
	AccessToken string
	Logger      *zap.Logger
}

// Middleware rejects any request whose coach token does not match. A wrong
// or missing token never reaches the coach handlers.
func Middleware(cfg Config) fiber.Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		token := c.Query(QueryParam)
		if cfg.AccessToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AccessToken)) != 1 {
			cfg.Logger.Warn("Coach access denied",
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
			)
			metrics.CoachRequestsRejected.WithLabelValues("bad_token").Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid access token",
			})
		}
		return c.Next()
	}
}
