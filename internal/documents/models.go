package documents

import "time"

// Document lifecycle states. New uploads start Pending; the blob pipeline
// moves them to Ready or Error.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusError      = "error"
)

// Document is the metadata record for an uploaded file. File content itself
// lives in object storage when one is configured; the collection only holds
// the descriptor.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       string    `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	Status     string    `json:"status"`
	UserID     string    `json:"userId"`
}

func (d *Document) RecordID() string      { return d.ID }
func (d *Document) SetRecordID(id string) { d.ID = id }
func (d *Document) Owner() string         { return d.UserID }
func (d *Document) SetOwner(sub string)   { d.UserID = sub }
func (d *Document) Clone() *Document      { cp := *d; return &cp }
