package client

import (
	"context"
	"time"

	"github.com/settleview/settleview-api/internal/appointments"
)

// AppointmentsHook caches the caller's appointments.
type AppointmentsHook struct {
	hookState
	c     *Client
	appts []*appointments.Appointment
}

func NewAppointmentsHook(c *Client) *AppointmentsHook {
	return &AppointmentsHook{c: c}
}

// Fetch replaces the cache; on failure the cache resets.
func (h *AppointmentsHook) Fetch(ctx context.Context) error {
	h.begin()
	var out []*appointments.Appointment
	if err := h.c.get(ctx, "/api/appointments", &out); err != nil {
		h.finish(err, func() { h.appts = nil })
		return err
	}
	h.finish(nil, func() { h.appts = out })
	return nil
}

// Create books an appointment; the server forces status pending.
func (h *AppointmentsHook) Create(ctx context.Context, in appointments.CreateInput) (*appointments.Appointment, error) {
	h.begin()
	var apt appointments.Appointment
	if err := h.c.post(ctx, "/api/appointments", in, &apt); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() { h.appts = append(h.appts, &apt) })
	return &apt, nil
}

// Update merges a partial update into an appointment.
func (h *AppointmentsHook) Update(ctx context.Context, id string, p appointments.Patch) (*appointments.Appointment, error) {
	h.begin()
	var apt appointments.Appointment
	if err := h.c.put(ctx, "/api/appointments?id="+id, p, &apt); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() {
		for i, a := range h.appts {
			if a.ID == id {
				h.appts[i] = &apt
				return
			}
		}
	})
	return &apt, nil
}

// Cancel marks an appointment cancelled.
func (h *AppointmentsHook) Cancel(ctx context.Context, id string) (*appointments.Appointment, error) {
	status := appointments.StatusCancelled
	return h.Update(ctx, id, appointments.Patch{Status: &status})
}

// Delete removes an appointment.
func (h *AppointmentsHook) Delete(ctx context.Context, id string) error {
	h.begin()
	if err := h.c.del(ctx, "/api/appointments?id="+id); err != nil {
		h.finish(err, nil)
		return err
	}
	h.finish(nil, func() {
		kept := h.appts[:0]
		for _, a := range h.appts {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		h.appts = kept
	})
	return nil
}

// Appointments returns a copy of the cached list.
func (h *AppointmentsHook) Appointments() []*appointments.Appointment {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*appointments.Appointment, len(h.appts))
	copy(out, h.appts)
	return out
}

// Upcoming filters the cache for future, non-cancelled, non-completed
// appointments against the given clock.
func (h *AppointmentsHook) Upcoming(now time.Time) []*appointments.Appointment {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*appointments.Appointment, 0)
	for _, a := range h.appts {
		if a.Status == appointments.StatusCancelled || a.Status == appointments.StatusCompleted {
			continue
		}
		if a.StartsAfter(now) {
			out = append(out, a)
		}
	}
	return out
}

// ByStatus filters the cache by status.
func (h *AppointmentsHook) ByStatus(status string) []*appointments.Appointment {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*appointments.Appointment, 0)
	for _, a := range h.appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// CompletionRate is the share of cached appointments already completed.
// An empty cache yields 0.
func (h *AppointmentsHook) CompletionRate() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.appts) == 0 {
		return 0
	}
	done := 0
	for _, a := range h.appts {
		if a.Status == appointments.StatusCompleted {
			done++
		}
	}
	return float64(done) / float64(len(h.appts)) * 100
}
