package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/pkg/logger"
	"github.com/settleview/settleview-api/pkg/metrics"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// ListNotifications returns the caller's notifications in creation order.
func (a *API) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, a.notifications.List(middleware.Subject(c)))
}

// MarkNotificationRead flags one notification as read.
func (a *API) MarkNotificationRead(c *gin.Context) {
	n, err := a.notifications.MarkRead(middleware.Subject(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Notification")
		return
	}
	c.JSON(http.StatusOK, n)
}

// NotificationEvents streams the caller's notifications as they are raised.
// One SSE frame per notification; the subscription ends on disconnect.
func (a *API) NotificationEvents(c *gin.Context) {
	sub := middleware.Subject(c)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	events, cancel := a.notifications.Subscribe(sub)
	defer cancel()

	metrics.ActiveStreams.WithLabelValues("notifications").Inc()
	defer metrics.ActiveStreams.WithLabelValues("notifications").Dec()

	c.Writer.Flush()
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case n, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(n)
			if err != nil {
				logger.Errorf("notification stream: marshal event: %v", err)
				continue
			}
			if _, err := c.Writer.Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
				return
			}
			c.Writer.Flush()
			metrics.EventsPublished.WithLabelValues("notifications").Inc()
		}
	}
}
