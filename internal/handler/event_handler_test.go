package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boardy/internal/handler"
	"boardy/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStream(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	hub := notify.NewHub(4)
	r := gin.New()
	r.GET("/events", handler.NewEventHandler(hub, time.Hour).Stream)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", "/events", nil).WithContext(ctx)
	resp := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(resp, req)
		close(done)
	}()
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	// Act
	require.NoError(t, hub.Notify(context.Background(), notify.Success(notify.KindTaskAdded, "task-5", "Task added successfully!")))
	time.Sleep(20 * time.Millisecond)
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after client disconnect")
	}
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/event-stream", resp.Header().Get("Content-Type"))
	body := resp.Body.String()
	assert.Contains(t, body, ":ok")
	assert.Contains(t, body, "event:notice")
	assert.Contains(t, body, "Task added successfully!")
	assert.Equal(t, 0, hub.Subscribers())
}
