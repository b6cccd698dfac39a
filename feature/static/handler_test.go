package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"apk-server/core/router"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRoot creates <tmp>/secret.txt outside the root and a few files inside
// <tmp>/root.
func setupRoot(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "root")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "site"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("top secret"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.html"), []byte("<h1>hello</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "readme.txt"), []byte("read me"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "site", "index.html"), []byte("<p>index</p>"), 0o644))
	return root
}

func setupTestApp(t *testing.T, cfg Config) *fiber.App {
	t.Helper()
	r := router.New(nil)
	require.NoError(t, NewFeature(setupRoot(t), cfg).Load(r))
	app := fiber.New()
	app.Use(r.Handler)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(b)
}

func TestServe_File(t *testing.T) {
	app := setupTestApp(t, Config{Browse: true, Index: "index.html"})

	status, ct, body := get(t, app, "/hello.html")
	assert.Equal(t, 200, status)
	assert.Contains(t, ct, "text/html")
	assert.Equal(t, "<h1>hello</h1>", body)

	status, ct, body = get(t, app, "/docs/readme.txt")
	assert.Equal(t, 200, status)
	assert.Contains(t, ct, "text/plain")
	assert.Equal(t, "read me", body)
}

func TestServe_Directory(t *testing.T) {
	t.Run("Index", func(t *testing.T) {
		app := setupTestApp(t, Config{Browse: true, Index: "index.html"})
		status, _, body := get(t, app, "/site/")
		assert.Equal(t, 200, status)
		assert.Equal(t, "<p>index</p>", body)
	})

	t.Run("Listing", func(t *testing.T) {
		app := setupTestApp(t, Config{Browse: true, Index: "index.html"})
		status, ct, body := get(t, app, "/docs")
		assert.Equal(t, 200, status)
		assert.Contains(t, ct, "text/html")
		assert.Contains(t, body, "readme.txt")
	})

	t.Run("ListingDisabled", func(t *testing.T) {
		app := setupTestApp(t, Config{Browse: false, Index: "index.html"})
		status, _, _ := get(t, app, "/docs")
		assert.Equal(t, fiber.StatusForbidden, status)
	})
}

func TestServe_NotFound(t *testing.T) {
	app := setupTestApp(t, Config{Browse: true, Index: "index.html"})
	status, _, _ := get(t, app, "/missing.txt")
	assert.Equal(t, 404, status)
}

func TestServe_Traversal(t *testing.T) {
	app := setupTestApp(t, Config{Browse: true, Index: "index.html"})

	targets := []string{
		"/../secret.txt",
		"/../../secret.txt",
		"/docs/../../secret.txt",
		"/..%2fsecret.txt",
		"/%2e%2e/secret.txt",
		"/../../etc/passwd",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			status, _, body := get(t, app, target)
			assert.NotEqual(t, 200, status)
			assert.NotContains(t, body, "top secret")
			assert.NotContains(t, body, "root:")
		})
	}
}

func TestLoader(t *testing.T) {
	feature := NewFeature(t.TempDir(), Config{})
	assert.Equal(t, "static", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.False(t, NewFeature("", Config{}).IsEnabled())
}
