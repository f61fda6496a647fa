package client

import (
	"context"
	"encoding/json"

	"github.com/settleview/settleview-api/internal/messaging"
)

// MessagesHook caches the {conversations, messages} snapshot. Subscribe
// keeps the cache current by replacing it with each streamed snapshot.
type MessagesHook struct {
	hookState
	c    *Client
	snap messaging.Snapshot
}

func NewMessagesHook(c *Client) *MessagesHook {
	return &MessagesHook{c: c}
}

// Fetch replaces the snapshot; on failure it resets to empty.
func (h *MessagesHook) Fetch(ctx context.Context) error {
	h.begin()
	var out messaging.Snapshot
	if err := h.c.get(ctx, "/api/messages", &out); err != nil {
		h.finish(err, func() { h.snap = messaging.Snapshot{} })
		return err
	}
	h.finish(nil, func() { h.snap = out })
	return nil
}

// Send appends a message and patches the cached conversation the same way
// the server does.
func (h *MessagesHook) Send(ctx context.Context, conversationID, content string) (*messaging.Message, error) {
	h.begin()
	var msg messaging.Message
	body := map[string]string{"conversationId": conversationID, "content": content}
	if err := h.c.post(ctx, "/api/messages", body, &msg); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() {
		h.snap.Messages = append(h.snap.Messages, &msg)
		for _, conv := range h.snap.Conversations {
			if conv.ID == conversationID {
				conv.LastMessage = content
				conv.Unread = 0
			}
		}
	})
	return &msg, nil
}

// MarkRead clears a conversation's unread counter.
func (h *MessagesHook) MarkRead(ctx context.Context, conversationID string) error {
	h.begin()
	var conv messaging.Conversation
	if err := h.c.put(ctx, "/api/messages?id="+conversationID, nil, &conv); err != nil {
		h.finish(err, nil)
		return err
	}
	h.finish(nil, func() {
		for i, c := range h.snap.Conversations {
			if c.ID == conversationID {
				h.snap.Conversations[i] = &conv
			}
		}
	})
	return nil
}

// Subscribe replaces the snapshot with every streamed frame. It blocks until
// the context is cancelled or the transport fails, and never reconnects.
func (h *MessagesHook) Subscribe(ctx context.Context) error {
	return h.c.stream(ctx, "/api/messages", func(frame []byte) {
		var snap messaging.Snapshot
		if err := json.Unmarshal(frame, &snap); err != nil {
			return
		}
		h.mu.Lock()
		h.snap = snap
		h.mu.Unlock()
	})
}

// Snapshot returns the cached state.
func (h *MessagesHook) Snapshot() messaging.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Conversations returns a copy of the cached conversations.
func (h *MessagesHook) Conversations() []*messaging.Conversation {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*messaging.Conversation, len(h.snap.Conversations))
	copy(out, h.snap.Conversations)
	return out
}

// ConversationMessages filters the cached messages for one conversation.
func (h *MessagesHook) ConversationMessages(conversationID string) []*messaging.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*messaging.Message, 0)
	for _, m := range h.snap.Messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out
}

// UnreadCount sums the unread counters over the cached conversations.
func (h *MessagesHook) UnreadCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, c := range h.snap.Conversations {
		n += c.Unread
	}
	return n
}

// ResponseRate is the share of cached conversations the user has replied
// to, judged by the sender of each conversation's latest cached message.
// An empty cache yields 0.
func (h *MessagesHook) ResponseRate() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.snap.Conversations) == 0 {
		return 0
	}
	replied := 0
	for _, conv := range h.snap.Conversations {
		for i := len(h.snap.Messages) - 1; i >= 0; i-- {
			if h.snap.Messages[i].ConversationID != conv.ID {
				continue
			}
			if h.snap.Messages[i].Sender == "You" {
				replied++
			}
			break
		}
	}
	return float64(replied) / float64(len(h.snap.Conversations)) * 100
}
