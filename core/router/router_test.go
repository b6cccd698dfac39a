package router_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"apk-server/core/router"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alias = "/download.stefano/app-debug.apk"

func setupTestApp(r *router.Router) *fiber.App {
	app := fiber.New()
	app.Use(r.Handler)
	return app
}

func body(t *testing.T, app *fiber.App, method, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestRouter_ExactDispatch(t *testing.T) {
	r := router.New(func(c *fiber.Ctx) error {
		return c.SendString("fallback")
	})
	r.Handle(router.Exact(fiber.MethodGet, alias), func(c *fiber.Ctx) error {
		return c.SendString("artifact")
	})
	app := setupTestApp(r)

	tests := []struct {
		name   string
		method string
		target string
		want   string
	}{
		{"Literal", "GET", alias, "artifact"},
		{"TrailingSlash", "GET", alias + "/", "fallback"},
		{"QueryString", "GET", alias + "?v=1", "fallback"},
		{"EncodedVariant", "GET", "/download.stefano/app%2Ddebug.apk", "fallback"},
		{"CaseVariant", "GET", "/Download.stefano/app-debug.apk", "fallback"},
		{"DoubleSlash", "GET", "/download.stefano//app-debug.apk", "fallback"},
		{"OtherMethod", "POST", alias, "fallback"},
		{"Root", "GET", "/", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, got := body(t, app, tt.method, tt.target)
			assert.Equal(t, 200, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouter_FirstMatchWins(t *testing.T) {
	r := router.New(nil)
	r.Handle(router.Exact("", "/x"), func(c *fiber.Ctx) error { return c.SendString("first") })
	r.Handle(router.Exact("", "/x"), func(c *fiber.Ctx) error { return c.SendString("second") })
	app := setupTestApp(r)

	_, got := body(t, app, "GET", "/x")
	assert.Equal(t, "first", got)
	assert.Len(t, r.Routes(), 2)
}

func TestRouter_NilFallbackPassesThrough(t *testing.T) {
	r := router.New(nil)
	app := setupTestApp(r)
	app.Use(func(c *fiber.Ctx) error { return c.SendString("next") })

	_, got := body(t, app, "GET", "/anything")
	assert.Equal(t, "next", got)

	r.SetFallback(func(c *fiber.Ctx) error { return c.SendString("replaced") })
	_, got = body(t, app, "GET", "/anything")
	assert.Equal(t, "replaced", got)
}

func TestAny(t *testing.T) {
	r := router.New(func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })
	r.Handle(router.Any(router.Exact("GET", "/a"), router.Exact("GET", "/b")), func(c *fiber.Ctx) error {
		return c.SendString("hit")
	})
	app := setupTestApp(r)

	_, got := body(t, app, "GET", "/b")
	assert.Equal(t, "hit", got)

	status, _ := body(t, app, "GET", "/c")
	assert.Equal(t, fiber.StatusTeapot, status)
}
