package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Protocol-Lattice/gqlparser/handler"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gqlserver.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := loadConfig(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
	require.Equal(t, int64(handler.DefaultMaxBodyBytes), cfg.handlerOptions().MaxBodyBytes)
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
addr = ":9000"
shutdown_timeout = "30s"
max_body_bytes = 4096
max_depth = 64
no_location = true
allow_legacy_sdl_empty_fields = true
`)
	cfg, err := loadConfig([]string{"--config", path}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Addr)
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)

	opts := cfg.handlerOptions()
	require.Equal(t, 64, opts.Parser.MaxDepth)
	require.True(t, opts.Parser.NoLocation)
	require.True(t, opts.Parser.AllowLegacySDLEmptyFields)
	require.False(t, opts.Parser.ExperimentalFragmentVariables)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "addr = \":9000\"\nmax_depth = 64\n")
	cfg, err := loadConfig([]string{"--addr", ":7000", "--config=" + path, "--fragment-variables"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Addr)
	require.Equal(t, 64, cfg.MaxDepth)
	require.True(t, cfg.ExperimentalFragmentVariables)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()
	_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, io.Discard)
	require.Error(t, err)

	_, err = loadConfig([]string{"--config", writeConfig(t, "addr = ")}, io.Discard)
	require.Error(t, err)

	_, err = loadConfig([]string{"--no-such-flag"}, io.Discard)
	require.Error(t, err)
}

func TestNewServer(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.AllowLegacySDLImplementsInterfaces = true
	server := newServer(cfg, zap.NewNop())
	require.Equal(t, ":8080", server.Addr)

	srv := httptest.NewServer(server.Handler)
	defer srv.Close()
	resp, err := http.Post(srv.URL+"/parse", "application/json",
		strings.NewReader(`{"query": "type T implements A B { f: Int }"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
