package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const eventBuffer = 16

// StreamEvents godoc
// @Summary      Live updates
// @Description  Server-sent events announcing upvote and game changes.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /api/events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	client := h.events.Subscribe(eventBuffer)
	defer h.events.Unsubscribe(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
