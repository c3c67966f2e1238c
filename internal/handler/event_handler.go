package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"boardy/internal/notify"
)

type EventHandler struct {
	hub       *notify.Hub
	heartbeat time.Duration
}

func NewEventHandler(hub *notify.Hub, heartbeat time.Duration) *EventHandler {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &EventHandler{hub: hub, heartbeat: heartbeat}
}

// Stream pushes notices to the client as server-sent events until it disconnects
// @Summary  Notice stream
// @Tags     Events
// @Produce  text/event-stream
// @Router   /events [get]
func (h *EventHandler) Stream(c *gin.Context) {
	notices, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	// initial comment so headers reach the client right away
	if _, err := c.Writer.WriteString(":ok\n\n"); err != nil {
		return
	}
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	ctx := c.Request.Context()

	for {
		select {
		case n, ok := <-notices:
			if !ok {
				return
			}
			c.SSEvent("notice", n)
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := c.Writer.WriteString(":keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}
