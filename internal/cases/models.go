package cases

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusPending    = "pending"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// CaseDocument links an uploaded document into a case.
type CaseDocument struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// CaseAppointment links a scheduled appointment into a case.
type CaseAppointment struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
}

type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

type TimelineEvent struct {
	ID      string    `json:"id"`
	Event   string    `json:"event"`
	Date    time.Time `json:"date"`
	AddedBy string    `json:"addedBy"`
}

type BillingSummary struct {
	TotalBilled     float64 `json:"totalBilled"`
	TotalPaid       float64 `json:"totalPaid"`
	NextInvoiceDate string  `json:"nextInvoiceDate,omitempty"`
}

// Case is the richest dashboard entity. The nested documents, appointments,
// notes and timeline lists are append-only; they survive updates untouched.
type Case struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Type         string            `json:"type"`
	Status       string            `json:"status"`
	Priority     string            `json:"priority"`
	AssignedTo   string            `json:"assignedTo"`
	ClientID     string            `json:"clientId"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	DueDate      string            `json:"dueDate,omitempty"`
	Documents    []CaseDocument    `json:"documents"`
	Appointments []CaseAppointment `json:"appointments"`
	Notes        []Note            `json:"notes"`
	Timeline     []TimelineEvent   `json:"timeline"`
	Billing      BillingSummary    `json:"billing"`
	UserID       string            `json:"userId"`
}

func (c *Case) RecordID() string      { return c.ID }
func (c *Case) SetRecordID(id string) { c.ID = id }
func (c *Case) Owner() string         { return c.UserID }
func (c *Case) SetOwner(sub string)   { c.UserID = sub }

// Clone copies the case including its nested slices, so a stored case is
// never aliased by a caller's copy.
func (c *Case) Clone() *Case {
	cp := *c
	cp.Documents = append([]CaseDocument(nil), c.Documents...)
	cp.Appointments = append([]CaseAppointment(nil), c.Appointments...)
	cp.Notes = append([]Note(nil), c.Notes...)
	cp.Timeline = append([]TimelineEvent(nil), c.Timeline...)
	return &cp
}

// Statistics summarizes a user's case portfolio. ResolutionRate is a
// percentage; zero cases yield a zero rate.
type Statistics struct {
	Total          int     `json:"total"`
	Open           int     `json:"open"`
	Resolved       int     `json:"resolved"`
	Closed         int     `json:"closed"`
	ResolutionRate float64 `json:"resolutionRate"`
}
