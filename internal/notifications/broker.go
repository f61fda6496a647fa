package notifications

import (
	"sync"

	"github.com/settleview/settleview-api/pkg/metrics"
)

// Broker fans notifications out to the owner's live subscribers. Publishing
// never blocks: a subscriber whose buffer is full misses the event (the
// client resyncs via the regular list endpoint on reconnect).
type Broker struct {
	mu     sync.RWMutex
	buffer int
	subs   map[string]map[chan *Notification]struct{}
}

func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = 16
	}
	return &Broker{buffer: buffer, subs: make(map[string]map[chan *Notification]struct{})}
}

// Subscribe registers a channel for the owner's events. The returned cancel
// func removes the subscription and closes the channel; it is safe to call
// once, typically deferred by the stream handler.
func (b *Broker) Subscribe(owner string) (<-chan *Notification, func()) {
	ch := make(chan *Notification, b.buffer)

	b.mu.Lock()
	if b.subs[owner] == nil {
		b.subs[owner] = make(map[chan *Notification]struct{})
	}
	b.subs[owner][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if set, ok := b.subs[owner]; ok {
			if _, live := set[ch]; live {
				delete(set, ch)
				close(ch)
				if len(set) == 0 {
					delete(b.subs, owner)
				}
			}
		}
	}
	return ch, cancel
}

// Publish delivers the notification to every live subscriber of the owner.
func (b *Broker) Publish(owner string, n *Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[owner] {
		select {
		case ch <- n:
			metrics.EventsPublished.WithLabelValues("notifications").Inc()
		default:
			// subscriber too slow, drop
		}
	}
}

// SubscriberCount reports live subscriptions for the owner.
func (b *Broker) SubscriberCount(owner string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[owner])
}
