package router

import (
	"github.com/gofiber/fiber/v2"
)

// Matcher reports whether a route applies to the current request.
type Matcher interface {
	Match(c *fiber.Ctx) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(c *fiber.Ctx) bool

// Match calls f(c).
func (f MatcherFunc) Match(c *fiber.Ctx) bool {
	return f(c)
}

// Route pairs a Matcher with the handler it dispatches to.
type Route struct {
	Matcher Matcher
	Handler fiber.Handler
}

// Router evaluates routes in order and falls through to a default handler.
// Routes are registered during startup and never changed once serving starts.
type Router struct {
	routes   []Route
	fallback fiber.Handler
}

// New creates a Router using fallback for unmatched requests.
// A nil fallback passes the request on to the next fiber handler.
func New(fallback fiber.Handler) *Router {
	return &Router{fallback: fallback}
}

// Handle appends a route. Earlier routes take precedence.
func (r *Router) Handle(m Matcher, h fiber.Handler) {
	r.routes = append(r.routes, Route{Matcher: m, Handler: h})
}

// SetFallback replaces the handler used when no route matches.
func (r *Router) SetFallback(h fiber.Handler) {
	r.fallback = h
}

// Routes returns a copy of the registered routes.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Handler is the fiber.Handler to mount with app.Use.
func (r *Router) Handler(c *fiber.Ctx) error {
	for _, route := range r.routes {
		if route.Matcher.Match(c) {
			return route.Handler(c)
		}
	}
	if r.fallback == nil {
		return c.Next()
	}
	return r.fallback(c)
}
