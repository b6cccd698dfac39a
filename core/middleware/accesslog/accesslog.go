package accesslog

import (
	"errors"
	"time"

	"apk-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New logs every request through l once the downstream handlers return.
// Errors are passed on unchanged so fiber's error handler still renders them.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", string(c.Request().Header.RequestURI())),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}

		rl := logger.WithRayID(l, c)
		switch {
		case status >= fiber.StatusInternalServerError:
			rl.Error("Request failed", append(fields, zap.Error(err))...)
		case err != nil:
			rl.Info("Request completed", append(fields, zap.Error(err))...)
		default:
			rl.Info("Request completed", fields...)
		}
		return err
	}
}
