package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"petshop/internal/config"
	"petshop/internal/http/handlers"
	applog "petshop/internal/log"
	"petshop/internal/repos"
)

type testApp struct {
	app    *fiber.App
	dbPath string
}

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *testApp {
	t.Helper()
	path := filepath.Join(t.TempDir(), "petshop.db")
	cfg := config.Config{
		DBDriver:        "sqlite",
		DBURL:           path,
		DBMaxOpen:       10,
		DBBusyTimeoutMs: 10000,
		BodyLimit:       1 << 20,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	store, err := repos.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return &testApp{app: handlers.NewApp(cfg, handlers.NewDeps(store)), dbPath: path}
}

// do sends one request and returns status, body and the response headers.
func (a *testApp) do(t *testing.T, method, path, body string) (int, string, http.Header) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b), resp.Header
}

// decodeList parses a list response with encoding/json so the hand-written
// encoder is checked against a real parser.
func decodeList(t *testing.T, body string) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &out), body)
	return out
}

type logEntry struct {
	Action string         `json:"action"`
	Level  string         `json:"level"`
	Audit  bool           `json:"audit"`
	Status int            `json:"status"`
	ReqID  string         `json:"req_id"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	require.NoError(t, applog.Setup("info", ""))
	buf := &lockedBuf{}
	logrus.SetOutput(buf)
	defer logrus.SetOutput(os.Stdout)

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.b.String()), "\n") {
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findLog(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
