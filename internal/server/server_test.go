package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boardy/internal/config"
	"boardy/internal/server"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:      "0",
		GinMode:         "test",
		LogLevel:        "error",
		RedisChannel:    "boardy:notices",
		ShutdownTimeout: time.Second,
		SwaggerEnabled:  true,
	}
}

func TestInit_ServesBoard(t *testing.T) {
	s, err := server.Init(testConfig())
	require.NoError(t, err)
	assert.Nil(t, s.Redis)

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/board", nil)
	s.Engine.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Contains(t, body, "columnOrder")
	assert.Contains(t, body, "labels")
}

func TestInit_AddTaskEndToEnd(t *testing.T) {
	s, err := server.Init(testConfig())
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/columns/column-2/tasks", nil)
	s.Engine.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), "New task 5")
}

func TestInit_InvalidLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "loud"

	_, err := server.Init(cfg)

	assert.Error(t, err)
}

func TestInit_InvalidGinMode(t *testing.T) {
	cfg := testConfig()
	cfg.GinMode = "prod"

	var err error
	assert.NotPanics(t, func() {
		_, err = server.Init(cfg)
	})

	assert.EqualError(t, err, `invalid gin mode "prod"`)
}

func TestInit_WithRedis(t *testing.T) {
	m, err := miniredis.Run()
	require.NoError(t, err)
	defer m.Close()
	cfg := testConfig()
	cfg.RedisAddr = m.Addr()

	s, err := server.Init(cfg)

	require.NoError(t, err)
	require.NotNil(t, s.Redis)
	assert.NoError(t, s.Redis.Close())
}

func TestInit_RedisUnreachable(t *testing.T) {
	m, err := miniredis.Run()
	require.NoError(t, err)
	cfg := testConfig()
	cfg.RedisAddr = m.Addr()
	m.Close()

	_, err = server.Init(cfg)

	assert.Error(t, err)
}
