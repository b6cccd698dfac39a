package artifact

import (
	"errors"
	"fmt"

	"apk-server/core/logger"
	"apk-server/core/router"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgNotFound = "APK file not found"
	msgFailed   = "Error downloading APK"
)

// Handler serves the artifact as a download.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes adds a single route matching any configured alias exactly.
func (h *Handler) RegisterRoutes(r *router.Router) {
	aliases := h.service.Routes()
	matchers := make([]router.Matcher, 0, len(aliases))
	for _, route := range aliases {
		matchers = append(matchers, router.Exact(fiber.MethodGet, route))
	}
	r.Handle(router.Any(matchers...), h.HandleDownload)
}

// HandleDownload streams the artifact with attachment headers.
// The open stream is handed to fasthttp, which closes it after the body is
// written or the client goes away.
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rc, info, err := h.service.Open(c.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.Warn("Artifact not found", zap.String("location", h.service.Location()))
			return c.Status(fiber.StatusNotFound).SendString(msgNotFound)
		}
		l.Error("Artifact read failed", zap.String("location", h.service.Location()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString(msgFailed)
	}

	c.Set(fiber.HeaderContentType, h.service.cfg.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, h.service.cfg.Filename))

	l.Debug("Serving artifact", zap.Int64("size", info.Size))
	return c.Status(fiber.StatusOK).SendStream(rc, int(info.Size))
}
