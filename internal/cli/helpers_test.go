package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/pcmon/internal/conn"
)

const sampleFrame = `{
  "cpu": {"usage": 42.5, "frequency": 3600, "per_core": [10, 90]},
  "memory": {"used": 12.3, "total": 32, "percent": 38.4},
  "network": {"download_rate": 1.5, "upload_rate": 0.25},
  "processes": [{"pid": 1, "name": "init", "cpu_percent": 0.1, "memory_percent": 0.2}],
  "system": {"available": true, "hostname": "desk", "uptime": "3h"}
}`

// producer serves a websocket on the stream path. It sends messages, then
// keeps the connection open until the client goes away.
func producer(t *testing.T, messages ...string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc(conn.StreamPath, func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer ws.Close()

		for _, m := range messages {
			if err := ws.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
				return
			}
		}
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// isolate points config discovery at empty temp dirs and resets the
// package-level flag values.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	for _, key := range []string{"PCMON_ORIGIN", "PCMON_RECONNECT_DELAY", "PCMON_LOG_FILE"} {
		t.Setenv(key, "")
	}

	configFlag = ""
	originFlag = ""
	verboseFlag = false
	noColorFlag = false
	dashboardFlags = DashboardFlags{}
	initGlobal = false
	initForce = false
	initNonInteractive = false
	checkWaitFlag = DefaultCheckWait.String()
	versionShort = false
	return home
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
