package messaging

import "time"

// Message is append-only: once created it is never edited or removed.
type Message struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Sender         string    `json:"sender"`
	Timestamp      time.Time `json:"timestamp"`
	ConversationID string    `json:"conversationId"`
	UserID         string    `json:"userId"`
}

func (m *Message) RecordID() string      { return m.ID }
func (m *Message) SetRecordID(id string) { m.ID = id }
func (m *Message) Owner() string         { return m.UserID }
func (m *Message) SetOwner(sub string)   { m.UserID = sub }
func (m *Message) Clone() *Message       { cp := *m; return &cp }

// Conversation carries two derived caches: LastMessage mirrors the content
// of the most recent message, Unread counts messages the owner has not seen.
// Both are maintained on message append and mark-read.
type Conversation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	LastMessage string `json:"lastMessage"`
	Unread      int    `json:"unread"`
	UserID      string `json:"userId"`
}

func (c *Conversation) RecordID() string      { return c.ID }
func (c *Conversation) SetRecordID(id string) { c.ID = id }
func (c *Conversation) Owner() string         { return c.UserID }
func (c *Conversation) SetOwner(sub string)   { c.UserID = sub }
func (c *Conversation) Clone() *Conversation  { cp := *c; return &cp }

// Snapshot is the full per-user messaging state pushed over the stream.
type Snapshot struct {
	Conversations []*Conversation `json:"conversations"`
	Messages      []*Message      `json:"messages"`
}
