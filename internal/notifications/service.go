package notifications

import (
	"time"

	"github.com/settleview/settleview-api/internal/store"
)

// Service owns the notifications collection and the live broker. Notify is
// how every other domain raises dashboard notifications.
type Service struct {
	col    *store.Collection[*Notification]
	broker *Broker
}

func NewService(broker *Broker) *Service {
	return &Service{col: store.NewCollection[*Notification]("notifications", "ntf-"), broker: broker}
}

func (s *Service) Seed(owner string, ns ...*Notification) { s.col.Seed(owner, ns...) }

// List returns the owner's notifications in creation order.
func (s *Service) List(owner string) []*Notification { return s.col.List(owner) }

// Unread returns the owner's unread notifications.
func (s *Service) Unread(owner string) []*Notification {
	out := make([]*Notification, 0)
	for _, n := range s.col.List(owner) {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead flags a notification as read.
func (s *Service) MarkRead(owner, id string) (*Notification, error) {
	return s.col.Update(owner, id, func(n *Notification) { n.Read = true })
}

// Notify records a notification and pushes it to the owner's live streams.
func (s *Service) Notify(owner, kind, title, message string, refs map[string]string) {
	n := s.col.Create(owner, &Notification{
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Data:      refs,
	})
	s.broker.Publish(owner, n)
}

// Subscribe opens a live event channel for the owner.
func (s *Service) Subscribe(owner string) (<-chan *Notification, func()) {
	return s.broker.Subscribe(owner)
}
