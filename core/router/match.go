package router

import (
	"github.com/gofiber/fiber/v2"
)

// ExactMatcher matches one method and one literal request target.
type ExactMatcher struct {
	Method string
	Target string
}

// Exact returns a matcher for method and the literal request target.
// An empty method matches any method.
func Exact(method, target string) ExactMatcher {
	return ExactMatcher{Method: method, Target: target}
}

// Match compares against the request target as sent by the client.
// fiber's c.Path() is not used because routing settings may rewrite it.
func (m ExactMatcher) Match(c *fiber.Ctx) bool {
	if m.Method != "" && c.Method() != m.Method {
		return false
	}
	return string(c.Request().Header.RequestURI()) == m.Target
}

// Any matches if any of the given matchers match.
func Any(matchers ...Matcher) Matcher {
	return MatcherFunc(func(c *fiber.Ctx) bool {
		for _, m := range matchers {
			if m.Match(c) {
				return true
			}
		}
		return false
	})
}
