package client

import (
	"context"

	"github.com/settleview/settleview-api/internal/documents"
)

// DocumentsHook caches the caller's documents and exposes derived views
// computed locally over the cache.
type DocumentsHook struct {
	hookState
	c    *Client
	docs []*documents.Document
}

func NewDocumentsHook(c *Client) *DocumentsHook {
	return &DocumentsHook{c: c}
}

// Fetch replaces the cache with the server's list. On failure the cache is
// reset so callers never act on data of unknown age.
func (h *DocumentsHook) Fetch(ctx context.Context) error {
	h.begin()
	var out []*documents.Document
	if err := h.c.get(ctx, "/api/documents", &out); err != nil {
		h.finish(err, func() { h.docs = nil })
		return err
	}
	h.finish(nil, func() { h.docs = out })
	return nil
}

// Upload registers a document and appends it to the cache. The cache is
// retained on failure.
func (h *DocumentsHook) Upload(ctx context.Context, name, typ, size string) (*documents.Document, error) {
	h.begin()
	var doc documents.Document
	body := map[string]string{"name": name, "type": typ, "size": size}
	if err := h.c.post(ctx, "/api/documents", body, &doc); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() { h.docs = append(h.docs, &doc) })
	return &doc, nil
}

// UpdateStatus moves a document through its lifecycle and refreshes the
// cached copy.
func (h *DocumentsHook) UpdateStatus(ctx context.Context, id, status string) (*documents.Document, error) {
	h.begin()
	var doc documents.Document
	if err := h.c.put(ctx, "/api/documents?id="+id, map[string]string{"status": status}, &doc); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() {
		for i, d := range h.docs {
			if d.ID == id {
				h.docs[i] = &doc
				return
			}
		}
	})
	return &doc, nil
}

// Delete removes a document and drops it from the cache.
func (h *DocumentsHook) Delete(ctx context.Context, id string) error {
	h.begin()
	if err := h.c.del(ctx, "/api/documents?id="+id); err != nil {
		h.finish(err, nil)
		return err
	}
	h.finish(nil, func() {
		kept := h.docs[:0]
		for _, d := range h.docs {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		h.docs = kept
	})
	return nil
}

// Documents returns a copy of the cached list.
func (h *DocumentsHook) Documents() []*documents.Document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*documents.Document, len(h.docs))
	copy(out, h.docs)
	return out
}

// ByStatus filters the cache without touching the network.
func (h *DocumentsHook) ByStatus(status string) []*documents.Document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*documents.Document, 0)
	for _, d := range h.docs {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// ByType filters the cache by document type.
func (h *DocumentsHook) ByType(typ string) []*documents.Document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*documents.Document, 0)
	for _, d := range h.docs {
		if d.Type == typ {
			out = append(out, d)
		}
	}
	return out
}
