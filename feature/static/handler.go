package static

import (
	"net/http"

	"apk-server/core/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// Handler serves files below a fixed root.
type Handler struct {
	root    string
	handler fiber.Handler
}

// NewHandler creates a file handler rooted at root.
//
// http.Dir cleans each name against "/" before joining it to root, so ".."
// segments in the request cannot climb out of it.
func NewHandler(root string, cfg Config) *Handler {
	return &Handler{
		root: root,
		handler: filesystem.New(filesystem.Config{
			Root:   http.Dir(root),
			Browse: cfg.Browse,
			Index:  cfg.Index,
		}),
	}
}

// Serve is the fiber.Handler. Misses fall through with status 404.
func (h *Handler) Serve(c *fiber.Ctx) error {
	return h.handler(c)
}

// RegisterRoutes installs the handler as the router fallback.
func (h *Handler) RegisterRoutes(r *router.Router) {
	r.SetFallback(h.Serve)
}
