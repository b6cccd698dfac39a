package artifact

import (
	"apk-server/core/router"

	"go.uber.org/zap"
)

// Feature registers the artifact download routes.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the artifact feature.
func NewFeature(source Source, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(source, cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "artifact"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.cfg.Enabled && len(f.service.cfg.Routes) > 0
}

// Load registers the feature's routes.
func (f *Feature) Load(r *router.Router) error {
	f.handler.RegisterRoutes(r)
	return nil
}
