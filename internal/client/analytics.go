package client

import (
	"context"

	"github.com/settleview/settleview-api/internal/analytics"
)

// AnalyticsHook caches the dashboard analytics snapshot.
type AnalyticsHook struct {
	hookState
	c    *Client
	data analytics.Data
}

func NewAnalyticsHook(c *Client) *AnalyticsHook {
	return &AnalyticsHook{c: c}
}

// Fetch replaces the snapshot; on failure it resets to zeros.
func (h *AnalyticsHook) Fetch(ctx context.Context) error {
	h.begin()
	var out analytics.Data
	if err := h.c.get(ctx, "/api/analytics", &out); err != nil {
		h.finish(err, func() { h.data = analytics.Data{} })
		return err
	}
	h.finish(nil, func() { h.data = out })
	return nil
}

// Report requests a custom date-range report. The cached snapshot is not
// touched.
func (h *AnalyticsHook) Report(ctx context.Context, from, to string) (*analytics.PeriodReport, error) {
	h.begin()
	var rep analytics.PeriodReport
	body := map[string]string{"from": from, "to": to}
	if err := h.c.post(ctx, "/api/analytics", body, &rep); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, nil)
	return &rep, nil
}

// Data returns the cached snapshot.
func (h *AnalyticsHook) Data() analytics.Data {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data
}

// ResolutionRate is resolved over total cases as a percentage; 0 when the
// snapshot has no cases.
func (h *AnalyticsHook) ResolutionRate() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.data.TotalCases == 0 {
		return 0
	}
	return float64(h.data.ResolvedCases) / float64(h.data.TotalCases) * 100
}

// CollectionRate is collected over billed as a percentage; 0 when nothing
// has been billed.
func (h *AnalyticsHook) CollectionRate() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.data.TotalBilled == 0 {
		return 0
	}
	return (h.data.TotalBilled - h.data.OutstandingAmount) / h.data.TotalBilled * 100
}
