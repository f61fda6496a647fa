package client

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/settleview/settleview-api/internal/notifications"
)

// NotificationsHook caches notifications; Listen prepends live events.
type NotificationsHook struct {
	hookState
	c   *Client
	ntf []*notifications.Notification
}

func NewNotificationsHook(c *Client) *NotificationsHook {
	return &NotificationsHook{c: c}
}

// Fetch replaces the cache; on failure it resets.
func (h *NotificationsHook) Fetch(ctx context.Context) error {
	h.begin()
	var out []*notifications.Notification
	if err := h.c.get(ctx, "/api/notifications", &out); err != nil {
		h.finish(err, func() { h.ntf = nil })
		return err
	}
	h.finish(nil, func() { h.ntf = out })
	return nil
}

// MarkRead flags a notification read on the server and in the cache.
func (h *NotificationsHook) MarkRead(ctx context.Context, id string) error {
	h.begin()
	var n notifications.Notification
	if err := h.c.put(ctx, "/api/notifications/"+id, nil, &n); err != nil {
		h.finish(err, nil)
		return err
	}
	h.finish(nil, func() {
		for i, cur := range h.ntf {
			if cur.ID == id {
				h.ntf[i] = &n
			}
		}
	})
	return nil
}

// Listen prepends each live event to the cache. It blocks until the context
// is cancelled or the transport fails, and never reconnects.
func (h *NotificationsHook) Listen(ctx context.Context) error {
	return h.c.stream(ctx, "/api/notifications/events", func(frame []byte) {
		var n notifications.Notification
		if err := json.Unmarshal(frame, &n); err != nil {
			return
		}
		h.mu.Lock()
		h.ntf = append([]*notifications.Notification{&n}, h.ntf...)
		h.mu.Unlock()
	})
}

// Notifications returns a copy of the cache.
func (h *NotificationsHook) Notifications() []*notifications.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*notifications.Notification, len(h.ntf))
	copy(out, h.ntf)
	return out
}

// UnreadCount counts cached unread notifications.
func (h *NotificationsHook) UnreadCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, cur := range h.ntf {
		if !cur.Read {
			n++
		}
	}
	return n
}

// Unread filters the cache for unread notifications.
func (h *NotificationsHook) Unread() []*notifications.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*notifications.Notification, 0)
	for _, cur := range h.ntf {
		if !cur.Read {
			out = append(out, cur)
		}
	}
	return out
}

// ByType filters the cache by notification kind.
func (h *NotificationsHook) ByType(kind string) []*notifications.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*notifications.Notification, 0)
	for _, cur := range h.ntf {
		if cur.Type == kind {
			out = append(out, cur)
		}
	}
	return out
}

// Latest returns the n most recent cached notifications, newest first.
func (h *NotificationsHook) Latest(n int) []*notifications.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*notifications.Notification, len(h.ntf))
	copy(out, h.ntf)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
