package appointments

import (
	"fmt"
	"time"

	"github.com/settleview/settleview-api/internal/store"
)

// Notifier publishes a dashboard notification for the owner.
type Notifier interface {
	Notify(owner, kind, title, message string, refs map[string]string)
}

// CreateInput is the client-supplied part of an appointment. Status is not
// accepted on create; new appointments always start pending.
type CreateInput struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	With  string `json:"with"`
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Title  *string `json:"title"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Type   *string `json:"type"`
	Status *string `json:"status"`
	With   *string `json:"with"`
}

// Service owns the appointments collection for all users.
type Service struct {
	col    *store.Collection[*Appointment]
	notify Notifier
}

func NewService(notify Notifier) *Service {
	return &Service{col: store.NewCollection[*Appointment]("appointments", "apt-"), notify: notify}
}

func (s *Service) Seed(owner string, appts ...*Appointment) { s.col.Seed(owner, appts...) }

func (s *Service) List(owner string) []*Appointment { return s.col.List(owner) }

func (s *Service) Get(owner, id string) (*Appointment, error) { return s.col.Get(owner, id) }

func (s *Service) Create(owner string, in CreateInput) (*Appointment, error) {
	if in.Title == "" || in.Date == "" || in.Time == "" || in.With == "" {
		return nil, fmt.Errorf("%w: title, date, time and with are required", store.ErrValidation)
	}
	if in.Type != "" && in.Type != TypeVirtual && in.Type != TypeInPerson {
		return nil, fmt.Errorf("%w: type must be %q or %q", store.ErrValidation, TypeVirtual, TypeInPerson)
	}
	apt := s.col.Create(owner, &Appointment{
		Title:  in.Title,
		Date:   in.Date,
		Time:   in.Time,
		Type:   in.Type,
		Status: StatusPending,
		With:   in.With,
	})
	if s.notify != nil {
		s.notify.Notify(owner, "appointment", "Appointment requested",
			fmt.Sprintf("%s with %s on %s at %s.", apt.Title, apt.With, apt.Date, apt.Time),
			map[string]string{"appointmentId": apt.ID})
	}
	return apt, nil
}

func (s *Service) Update(owner, id string, p Patch) (*Appointment, error) {
	if p.Status != nil {
		switch *p.Status {
		case StatusScheduled, StatusPending, StatusCancelled, StatusCompleted:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", store.ErrValidation, *p.Status)
		}
	}
	return s.col.Update(owner, id, func(a *Appointment) {
		if p.Title != nil {
			a.Title = *p.Title
		}
		if p.Date != nil {
			a.Date = *p.Date
		}
		if p.Time != nil {
			a.Time = *p.Time
		}
		if p.Type != nil {
			a.Type = *p.Type
		}
		if p.Status != nil {
			a.Status = *p.Status
		}
		if p.With != nil {
			a.With = *p.With
		}
	})
}

func (s *Service) Delete(owner, id string) error {
	return s.col.Delete(owner, id, nil)
}

// Upcoming returns appointments starting after now, excluding cancelled and
// completed ones.
func (s *Service) Upcoming(owner string, now time.Time) []*Appointment {
	out := make([]*Appointment, 0)
	for _, a := range s.col.List(owner) {
		if a.Status == StatusCancelled || a.Status == StatusCompleted {
			continue
		}
		if a.StartsAfter(now) {
			out = append(out, a)
		}
	}
	return out
}
