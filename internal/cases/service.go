package cases

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/settleview/settleview-api/internal/store"
)

// Notifier publishes a dashboard notification for the owner.
type Notifier interface {
	Notify(owner, kind, title, message string, refs map[string]string)
}

// CreateInput is the client-supplied part of a case. Nested collections and
// billing always start empty.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	ClientID    string `json:"clientId"`
	DueDate     string `json:"dueDate"`
}

// Patch is a partial update; nested collections are not patchable, they grow
// through AddNote/AttachDocument/AttachAppointment only.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssignedTo  *string `json:"assignedTo"`
	DueDate     *string `json:"dueDate"`
}

// Service owns the cases collection for all users.
type Service struct {
	col    *store.Collection[*Case]
	notify Notifier
}

func NewService(notify Notifier) *Service {
	return &Service{col: store.NewCollection[*Case]("cases", "case-"), notify: notify}
}

func (s *Service) Seed(owner string, cs ...*Case) { s.col.Seed(owner, cs...) }

func (s *Service) List(owner string) []*Case { return s.col.List(owner) }

func (s *Service) Get(owner, id string) (*Case, error) { return s.col.Get(owner, id) }

func (s *Service) Create(owner string, in CreateInput) (*Case, error) {
	if in.Title == "" || in.Type == "" || in.ClientID == "" {
		return nil, fmt.Errorf("%w: title, type and clientId are required", store.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = StatusOpen
	}
	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	now := time.Now().UTC()
	cs := s.col.Create(owner, &Case{
		Title:        in.Title,
		Description:  in.Description,
		Type:         in.Type,
		Status:       status,
		Priority:     priority,
		AssignedTo:   in.AssignedTo,
		ClientID:     in.ClientID,
		CreatedAt:    now,
		UpdatedAt:    now,
		DueDate:      in.DueDate,
		Documents:    []CaseDocument{},
		Appointments: []CaseAppointment{},
		Notes:        []Note{},
		Timeline: []TimelineEvent{{
			ID: uuid.NewString(), Event: "Case opened", Date: now, AddedBy: in.AssignedTo,
		}},
	})
	if s.notify != nil {
		s.notify.Notify(owner, "system", "Case created", cs.Title, map[string]string{"caseId": cs.ID})
	}
	return cs, nil
}

func (s *Service) Update(owner, id string, p Patch) (*Case, error) {
	if p.Status != nil {
		switch *p.Status {
		case StatusOpen, StatusInProgress, StatusPending, StatusResolved, StatusClosed:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", store.ErrValidation, *p.Status)
		}
	}
	now := time.Now().UTC()
	return s.col.Update(owner, id, func(c *Case) {
		if p.Title != nil {
			c.Title = *p.Title
		}
		if p.Description != nil {
			c.Description = *p.Description
		}
		if p.Type != nil {
			c.Type = *p.Type
		}
		if p.Status != nil && *p.Status != c.Status {
			c.Timeline = append(c.Timeline, TimelineEvent{
				ID: uuid.NewString(), Event: "Status changed to " + *p.Status, Date: now, AddedBy: c.AssignedTo,
			})
			c.Status = *p.Status
		}
		if p.Priority != nil {
			c.Priority = *p.Priority
		}
		if p.AssignedTo != nil {
			c.AssignedTo = *p.AssignedTo
		}
		if p.DueDate != nil {
			c.DueDate = *p.DueDate
		}
		c.UpdatedAt = now
	})
}

func (s *Service) Delete(owner, id string) error {
	return s.col.Delete(owner, id, nil)
}

// AddNote appends a note and a matching timeline entry.
func (s *Service) AddNote(owner, id, content, author string) (*Case, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", store.ErrValidation)
	}
	now := time.Now().UTC()
	return s.col.Update(owner, id, func(c *Case) {
		c.Notes = append(c.Notes, Note{ID: uuid.NewString(), Content: content, CreatedAt: now, CreatedBy: author})
		c.Timeline = append(c.Timeline, TimelineEvent{ID: uuid.NewString(), Event: "Note added", Date: now, AddedBy: author})
		c.UpdatedAt = now
	})
}

// AttachDocument links an uploaded document into the case.
func (s *Service) AttachDocument(owner, id string, doc CaseDocument) (*Case, error) {
	now := time.Now().UTC()
	return s.col.Update(owner, id, func(c *Case) {
		c.Documents = append(c.Documents, doc)
		c.Timeline = append(c.Timeline, TimelineEvent{ID: uuid.NewString(), Event: "Document attached: " + doc.Name, Date: now})
		c.UpdatedAt = now
	})
}

// AttachAppointment links a scheduled appointment into the case.
func (s *Service) AttachAppointment(owner, id string, apt CaseAppointment) (*Case, error) {
	now := time.Now().UTC()
	return s.col.Update(owner, id, func(c *Case) {
		c.Appointments = append(c.Appointments, apt)
		c.Timeline = append(c.Timeline, TimelineEvent{ID: uuid.NewString(), Event: "Appointment linked: " + apt.Title, Date: now})
		c.UpdatedAt = now
	})
}

// RecentlyUpdated returns the n most recently updated cases, newest first.
func (s *Service) RecentlyUpdated(owner string, n int) []*Case {
	list := s.col.List(owner)
	sort.SliceStable(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	return list
}

// Stats summarizes the owner's cases. An empty portfolio yields all zeros,
// never a division error.
func (s *Service) Stats(owner string) Statistics {
	var st Statistics
	for _, c := range s.col.List(owner) {
		st.Total++
		switch c.Status {
		case StatusOpen:
			st.Open++
		case StatusResolved:
			st.Resolved++
		case StatusClosed:
			st.Closed++
		}
	}
	if st.Total > 0 {
		st.ResolutionRate = float64(st.Resolved+st.Closed) / float64(st.Total) * 100
	}
	return st
}
