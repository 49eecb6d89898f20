package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"formpdf/internal/logger"
)

// Logger is a middleware that logs each HTTP request as one structured entry.
// Fields: request_id, method, path, status, latency.
//
// A request-scoped logger carrying request_id is attached to the user context so
// downstream code can log through logger.FromContext. Errors returned by the
// chain are resolved with the app's error handler here, so the logged status is
// the one the client receives.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		ctx, reqLog := logger.WithRequestID(c.UserContext(), log, rid)
		c.SetUserContext(ctx)

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		reqLog.Info("http_request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
