package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"colorpick/internal/config"
	"colorpick/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is written by the picker loop and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// pipeHost plays the host over a pair of pipes wired into stdin and stdout.
type pipeHost struct {
	t       *testing.T
	lines   chan map[string]any
	toApp   *io.PipeWriter
	fromApp *io.PipeReader
}

func newPipeHost(t *testing.T) *pipeHost {
	t.Helper()
	hostToAppR, hostToAppW := io.Pipe()
	appToHostR, appToHostW := io.Pipe()

	oldIn, oldOut := stdin, stdout
	stdin, stdout = hostToAppR, appToHostW
	t.Cleanup(func() {
		stdin, stdout = oldIn, oldOut
		_ = hostToAppW.Close()
		_ = appToHostR.Close()
	})

	h := &pipeHost{t: t, lines: make(chan map[string]any, 16), toApp: hostToAppW, fromApp: appToHostR}
	go func() {
		scanner := bufio.NewScanner(appToHostR)
		for scanner.Scan() {
			var msg map[string]any
			if err := json.Unmarshal(scanner.Bytes(), &msg); err == nil {
				h.lines <- msg
			}
		}
		close(h.lines)
	}()
	return h
}

func (h *pipeHost) read() map[string]any {
	h.t.Helper()
	select {
	case msg, ok := <-h.lines:
		require.True(h.t, ok, "app closed its output")
		return msg
	case <-time.After(2 * time.Second):
		h.t.Fatal("timed out waiting for the app")
		return nil
	}
}

func (h *pipeHost) send(v any) {
	h.t.Helper()
	data, err := json.Marshal(v)
	require.NoError(h.t, err)
	_, err = h.toApp.Write(append(data, '\n'))
	require.NoError(h.t, err)
}

func TestRunHeadlessMode_HostSession(t *testing.T) {
	logs := &syncBuffer{}
	logging.InitForCLI(logging.LevelDebug, logs)

	host := newPipeHost(t)
	loaded := config.GetDefaultConfig()
	cfg := &Config{NoTUI: true, Color: "#ff0000", ColorpickConfig: &loaded}

	services, err := InitializeServices(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, "stdio", services.HostLabel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- runHeadlessMode(ctx, cfg, services) }()

	initReq := host.read()
	assert.Equal(t, "ui/initialize", initReq["method"])
	params := initReq["params"].(map[string]any)
	assert.Equal(t, "Color Picker MCP App", params["appInfo"].(map[string]any)["name"])

	host.send(map[string]any{
		"jsonrpc": "2.0",
		"id":      initReq["id"],
		"result": map[string]any{
			"protocolVersion": "2025-06-18",
			"hostInfo":        map[string]any{"name": "test-host", "version": "1.0.0"},
			"hostContext":     map[string]any{"theme": "dark"},
		},
	})
	assert.Equal(t, "ui/notifications/initialized", host.read()["method"])

	host.send(map[string]any{
		"jsonrpc": "2.0",
		"method":  "ui/notifications/tool-input",
		"params":  map[string]any{"arguments": map[string]any{"color": "#123456"}},
	})
	host.send(map[string]any{"jsonrpc": "2.0", "id": "teardown-1", "method": "ui/resource-teardown", "params": map[string]any{}})

	ack := host.read()
	assert.Equal(t, "teardown-1", ack["id"])
	assert.Equal(t, map[string]any{}, ack["result"])

	require.NoError(t, host.toApp.Close())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("headless mode did not exit after the host closed")
	}

	out := logs.String()
	assert.Contains(t, out, "Selection #ff0000")
	assert.Contains(t, out, "Selection #123456")
	assert.Contains(t, out, "theme=\\\"dark\\\"")
}

func TestRunHeadlessMode_NoBridge(t *testing.T) {
	err := runHeadlessMode(context.Background(), &Config{NoTUI: true}, &Services{})
	assert.ErrorIs(t, err, ErrNoBridge)
}

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name          string
		cfg           *Config
		wantTransport bool
		wantLabel     string
		wantErr       bool
	}{
		{name: "standalone", cfg: &Config{NoTUI: true, Standalone: true}},
		{name: "tui without url runs standalone", cfg: &Config{}},
		{name: "headless uses stdio", cfg: &Config{NoTUI: true}, wantTransport: true, wantLabel: "stdio"},
		{name: "unreachable websocket", cfg: &Config{HostURL: "ws://127.0.0.1:1/bridge"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.InitForCLI(logging.LevelError, io.Discard)
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			services, err := InitializeServices(ctx, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTransport, services.Transport != nil)
			assert.Equal(t, tt.wantLabel, services.HostLabel)
		})
	}
}

func TestThemeOverride(t *testing.T) {
	tests := []struct {
		theme string
		want  *bool
	}{
		{theme: config.ThemeAuto, want: nil},
		{theme: config.ThemeDark, want: boolPtr(true)},
		{theme: config.ThemeLight, want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			loaded := config.GetDefaultConfig()
			loaded.UI.Theme = tt.theme
			assert.Equal(t, tt.want, themeOverride(&Config{ColorpickConfig: &loaded}))
		})
	}

	assert.Nil(t, themeOverride(&Config{}))
}

func boolPtr(b bool) *bool { return &b }
