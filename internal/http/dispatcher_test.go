package handlers_test

import (
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop/internal/config"
)

func TestPreflightAnswersNoContent(t *testing.T) {
	a := newTestApp(t)
	for _, p := range []string{"/api/pets", "/api/pets/1", "/api/unknown/x/y", "/anything"} {
		code, body, h := a.do(t, "OPTIONS", p, "")
		assert.Equal(t, fiber.StatusNoContent, code, p)
		assert.Empty(t, body)
		assert.Equal(t, "application/json", h.Get("Content-Type"), p)
		assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", h.Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
	}
}

func TestUnroutableRequestsAreNotFound(t *testing.T) {
	a := newTestApp(t)
	cases := []struct{ method, path string }{
		{"GET", "/api/dogs"},
		{"GET", "/api"},
		{"GET", "/api/pets/1"},
		{"POST", "/api/pets/1"},
		{"PUT", "/api/pets"},
		{"DELETE", "/api/pets"},
		{"PUT", "/api/pets/abc"},
		{"GET", "/api/pets/1/extra"},
		{"PATCH", "/api/pets/1"},
		{"GET", "/nope"},
	}
	for _, tc := range cases {
		code, body, h := a.do(t, tc.method, tc.path, `{"name":"x"}`)
		assert.Equal(t, fiber.StatusNotFound, code, "%s %s", tc.method, tc.path)
		assert.Equal(t, `{"error":"Not found"}`, body, "%s %s", tc.method, tc.path)
		assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "application/json", h.Get("Content-Type"))
	}
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t)
	code, body, _ := a.do(t, "GET", "/healthz", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, `{"ok":true}`, body)
}

func breakStore(t *testing.T, a *testApp) {
	t.Helper()
	raw, err := sqlx.Open("sqlite", a.dbPath)
	require.NoError(t, err)
	defer raw.Close()
	_, err = raw.Exec(`DROP TABLE customers`)
	require.NoError(t, err)
}

func TestStoreFailureCarriesMessage(t *testing.T) {
	a := newTestApp(t)
	breakStore(t, a)

	code, body, _ := a.do(t, "GET", "/api/customers", "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Contains(t, body, "no such table: customers")
	decodeList(t, "["+body+"]")
}

func TestHideErrors(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.HideErrors = true })
	breakStore(t, a)

	code, body, _ := a.do(t, "GET", "/api/customers", "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, `{"error":"internal server error"}`, body)
}

// Oversized bodies are rejected by the server before any middleware runs, so
// the request has to go through a real listener.
func TestBodyLimit(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.BodyLimit = 64 })
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = a.app.Listener(ln) }()
	t.Cleanup(func() { _ = a.app.Shutdown() })

	big := `{"name":"` + strings.Repeat("x", 200) + `"}`
	resp, err := http.Post("http://"+ln.Addr().String()+"/api/pets", "application/json", strings.NewReader(big))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, `{"error":"Request Entity Too Large"}`, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
}
