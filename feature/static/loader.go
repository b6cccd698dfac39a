package static

import (
	"apk-server/core/router"
)

// Feature serves the working root as the default responder.
type Feature struct {
	handler *Handler
}

// NewFeature creates the static feature.
func NewFeature(root string, cfg Config) *Feature {
	return &Feature{handler: NewHandler(root, cfg)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.handler.root != ""
}

// Load installs the file server as the router fallback.
func (f *Feature) Load(r *router.Router) error {
	f.handler.RegisterRoutes(r)
	return nil
}
