package client

import (
	"context"
	"sort"

	"github.com/settleview/settleview-api/internal/cases"
)

// CasesHook caches the caller's cases with their nested data.
type CasesHook struct {
	hookState
	c  *Client
	cs []*cases.Case
}

func NewCasesHook(c *Client) *CasesHook {
	return &CasesHook{c: c}
}

// Fetch replaces the cache; on failure it resets.
func (h *CasesHook) Fetch(ctx context.Context) error {
	h.begin()
	var out []*cases.Case
	if err := h.c.get(ctx, "/api/cases", &out); err != nil {
		h.finish(err, func() { h.cs = nil })
		return err
	}
	h.finish(nil, func() { h.cs = out })
	return nil
}

// Create opens a case and appends it to the cache.
func (h *CasesHook) Create(ctx context.Context, in cases.CreateInput) (*cases.Case, error) {
	h.begin()
	var cs cases.Case
	if err := h.c.post(ctx, "/api/cases", in, &cs); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() { h.cs = append(h.cs, &cs) })
	return &cs, nil
}

// Update merges a patch and refreshes the cached copy.
func (h *CasesHook) Update(ctx context.Context, id string, p cases.Patch) (*cases.Case, error) {
	h.begin()
	var cs cases.Case
	if err := h.c.put(ctx, "/api/cases/"+id, p, &cs); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() { h.replace(id, &cs) })
	return &cs, nil
}

// AddNote appends a note to a case and refreshes the cached copy.
func (h *CasesHook) AddNote(ctx context.Context, id, content, author string) (*cases.Case, error) {
	h.begin()
	var cs cases.Case
	body := map[string]string{"content": content, "author": author}
	if err := h.c.post(ctx, "/api/cases/"+id+"/notes", body, &cs); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() { h.replace(id, &cs) })
	return &cs, nil
}

// Delete removes a case and drops it from the cache.
func (h *CasesHook) Delete(ctx context.Context, id string) error {
	h.begin()
	if err := h.c.del(ctx, "/api/cases/"+id); err != nil {
		h.finish(err, nil)
		return err
	}
	h.finish(nil, func() {
		kept := h.cs[:0]
		for _, cs := range h.cs {
			if cs.ID != id {
				kept = append(kept, cs)
			}
		}
		h.cs = kept
	})
	return nil
}

// replace swaps the cached copy in place; callers hold the lock via finish.
func (h *CasesHook) replace(id string, cs *cases.Case) {
	for i, cur := range h.cs {
		if cur.ID == id {
			h.cs[i] = cs
			return
		}
	}
}

// Cases returns a copy of the cache.
func (h *CasesHook) Cases() []*cases.Case {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*cases.Case, len(h.cs))
	copy(out, h.cs)
	return out
}

// ByID returns the cached case or nil.
func (h *CasesHook) ByID(id string) *cases.Case {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, cs := range h.cs {
		if cs.ID == id {
			return cs
		}
	}
	return nil
}

// ByStatus filters the cache by status.
func (h *CasesHook) ByStatus(status string) []*cases.Case {
	return h.filter(func(cs *cases.Case) bool { return cs.Status == status })
}

// ByType filters the cache by case type.
func (h *CasesHook) ByType(typ string) []*cases.Case {
	return h.filter(func(cs *cases.Case) bool { return cs.Type == typ })
}

// ByPriority filters the cache by priority.
func (h *CasesHook) ByPriority(priority string) []*cases.Case {
	return h.filter(func(cs *cases.Case) bool { return cs.Priority == priority })
}

// ByAssignee filters the cache by assignee.
func (h *CasesHook) ByAssignee(assignee string) []*cases.Case {
	return h.filter(func(cs *cases.Case) bool { return cs.AssignedTo == assignee })
}

// ByClient filters the cache by client.
func (h *CasesHook) ByClient(clientID string) []*cases.Case {
	return h.filter(func(cs *cases.Case) bool { return cs.ClientID == clientID })
}

func (h *CasesHook) filter(keep func(*cases.Case) bool) []*cases.Case {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*cases.Case, 0)
	for _, cs := range h.cs {
		if keep(cs) {
			out = append(out, cs)
		}
	}
	return out
}

// RecentlyUpdated returns the n most recently updated cached cases.
func (h *CasesHook) RecentlyUpdated(n int) []*cases.Case {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*cases.Case, len(h.cs))
	copy(out, h.cs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ResolutionRate is the share of cached cases resolved or closed, as a
// percentage. An empty cache yields 0.
func (h *CasesHook) ResolutionRate() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.cs) == 0 {
		return 0
	}
	done := 0
	for _, cs := range h.cs {
		if cs.Status == cases.StatusResolved || cs.Status == cases.StatusClosed {
			done++
		}
	}
	return float64(done) / float64(len(h.cs)) * 100
}
