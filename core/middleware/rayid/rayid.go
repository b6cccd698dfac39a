package rayid

import (
	"apk-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request header a caller may use to supply its own ray id.
const Header = "X-Ray-ID"

// Config defines the config for the middleware.
type Config struct {
	// Generator produces new ids. Defaults to uuid.NewString.
	Generator func() string
}

// New creates a middleware that stores a ray id in c.Locals(logger.RayIDKey).
func New(config ...Config) fiber.Handler {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" || len(rid) > 128 {
			rid = cfg.Generator()
		}
		c.Locals(logger.RayIDKey, rid)
		return c.Next()
	}
}
