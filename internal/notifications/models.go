package notifications

import "time"

// Notification kinds mirror the dashboard areas that produce them.
const (
	KindAppointment = "appointment"
	KindMessage     = "message"
	KindDocument    = "document"
	KindBilling     = "billing"
	KindSystem      = "system"
)

// Notification is a per-user event record. Data carries references back to
// the record that produced it (documentId, conversationId, ...).
type Notification struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Read      bool              `json:"read"`
	Data      map[string]string `json:"data,omitempty"`
	UserID    string            `json:"userId"`
}

func (n *Notification) RecordID() string      { return n.ID }
func (n *Notification) SetRecordID(id string) { n.ID = id }
func (n *Notification) Owner() string         { return n.UserID }
func (n *Notification) SetOwner(sub string)   { n.UserID = sub }

func (n *Notification) Clone() *Notification {
	cp := *n
	if n.Data != nil {
		cp.Data = make(map[string]string, len(n.Data))
		for k, v := range n.Data {
			cp.Data[k] = v
		}
	}
	return &cp
}
