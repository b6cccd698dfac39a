// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and contributes routes to a
// core/router.Router when loaded.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(r *router.Router) error
//	}
//
// # Manager
//
// The Manager holds registered features and loads the enabled ones in
// registration order. Order matters: the artifact feature registers exact
// routes, the static feature installs the fallback.
package loader
