package appointments

import "time"

const (
	StatusScheduled = "scheduled"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	TypeVirtual  = "virtual"
	TypeInPerson = "in-person"
)

// Appointment keeps date and time as the display strings the dashboard uses
// ("2024-03-25", "10:00 AM"). StartsAfter parses them on demand.
type Appointment struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Type   string `json:"type"`
	Status string `json:"status"`
	With   string `json:"with"`
	UserID string `json:"userId"`
}

func (a *Appointment) RecordID() string      { return a.ID }
func (a *Appointment) SetRecordID(id string) { a.ID = id }
func (a *Appointment) Owner() string         { return a.UserID }
func (a *Appointment) SetOwner(sub string)   { a.UserID = sub }
func (a *Appointment) Clone() *Appointment   { cp := *a; return &cp }

// StartsAfter reports whether the appointment begins after t. Unparseable
// date/time strings count as not upcoming.
func (a *Appointment) StartsAfter(t time.Time) bool {
	start, err := time.Parse("2006-01-02 3:04 PM", a.Date+" "+a.Time)
	if err != nil {
		return false
	}
	return start.After(t)
}
