package messaging

import (
	"fmt"
	"sync"
	"time"

	"github.com/settleview/settleview-api/internal/store"
)

// Notifier publishes a dashboard notification for the owner.
type Notifier interface {
	Notify(owner, kind, title, message string, refs map[string]string)
}

// Service owns messages and conversations. The service-level lock makes the
// message-append plus conversation-cache write one atomic step and spans the
// snapshot reads: no caller can observe the message without the updated
// lastMessage/unread.
type Service struct {
	mu            sync.RWMutex
	messages      *store.Collection[*Message]
	conversations *store.Collection[*Conversation]
	notify        Notifier
}

func NewService(notify Notifier) *Service {
	return &Service{
		messages:      store.NewCollection[*Message]("messages", "msg-"),
		conversations: store.NewCollection[*Conversation]("conversations", "conv-"),
		notify:        notify,
	}
}

func (s *Service) SeedConversations(owner string, convs ...*Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations.Seed(owner, convs...)
}

func (s *Service) SeedMessages(owner string, msgs ...*Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.Seed(owner, msgs...)
}

// Snapshot returns the owner's full messaging state. Both lists come from
// one read-locked section, so a snapshot never shows a message ahead of its
// conversation's lastMessage.
func (s *Service) Snapshot(owner string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Conversations: s.conversations.List(owner),
		Messages:      s.messages.List(owner),
	}
}

func (s *Service) Conversations(owner string) []*Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversations.List(owner)
}

// Send appends a message to the conversation and updates the conversation's
// lastMessage cache, resetting unread to zero for the sender's own view.
func (s *Service) Send(owner, conversationID, content string) (*Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", store.ErrValidation)
	}
	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversationId is required", store.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.conversations.Get(owner, conversationID); err != nil {
		return nil, err
	}
	msg := s.messages.Create(owner, &Message{
		Content:        content,
		Sender:         "You",
		Timestamp:      time.Now().UTC(),
		ConversationID: conversationID,
	})
	_, _ = s.conversations.Update(owner, conversationID, func(c *Conversation) {
		c.LastMessage = content
		c.Unread = 0
	})

	if s.notify != nil {
		s.notify.Notify(owner, "message", "Message sent",
			content, map[string]string{"conversationId": conversationID})
	}
	return msg, nil
}

// MarkRead clears the unread counter on a conversation.
func (s *Service) MarkRead(owner, conversationID string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversations.Update(owner, conversationID, func(c *Conversation) { c.Unread = 0 })
}

// UnreadCount sums unread counters across the owner's conversations.
func (s *Service) UnreadCount(owner string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.conversations.List(owner) {
		n += c.Unread
	}
	return n
}

// MessageCount reports how many messages the owner has.
func (s *Service) MessageCount(owner string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages.Len(owner)
}
