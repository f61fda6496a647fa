package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/pkg/logger"
	"github.com/settleview/settleview-api/pkg/metrics"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// GetMessages returns the {conversations, messages} snapshot. When the client
// accepts text/event-stream the snapshot is pushed immediately and then
// re-emitted on every heartbeat tick until the client disconnects.
func (a *API) GetMessages(c *gin.Context) {
	sub := middleware.Subject(c)
	if c.GetHeader("Accept") == "text/event-stream" {
		a.streamMessages(c, sub)
		return
	}
	c.JSON(http.StatusOK, a.messaging.Snapshot(sub))
}

func (a *API) streamMessages(c *gin.Context, sub string) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	metrics.ActiveStreams.WithLabelValues("messages").Inc()
	defer metrics.ActiveStreams.WithLabelValues("messages").Dec()

	heartbeat := a.cfg.Stream.Heartbeat
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	send := func() bool {
		payload, err := json.Marshal(a.messaging.Snapshot(sub))
		if err != nil {
			logger.Errorf("messages stream: marshal snapshot: %v", err)
			return false
		}
		if _, err := c.Writer.Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
			return false
		}
		c.Writer.Flush()
		metrics.EventsPublished.WithLabelValues("messages").Inc()
		return true
	}

	if !send() {
		return
	}
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
}

// SendMessage appends a message to a conversation. The conversation's
// lastMessage and unread caches update in the same step.
func (a *API) SendMessage(c *gin.Context) {
	var req struct {
		Content        string `json:"content"`
		ConversationID string `json:"conversationId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := a.messaging.Send(middleware.Subject(c), req.ConversationID, req.Content)
	if err != nil {
		respondError(c, err, "Conversation")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkConversationRead clears a conversation's unread counter.
func (a *API) MarkConversationRead(c *gin.Context) {
	id, ok := requireQueryID(c, "Conversation")
	if !ok {
		return
	}
	conv, err := a.messaging.MarkRead(middleware.Subject(c), id)
	if err != nil {
		respondError(c, err, "Conversation")
		return
	}
	c.JSON(http.StatusOK, conv)
}
