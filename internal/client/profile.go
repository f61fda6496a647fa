package client

import (
	"context"

	"github.com/settleview/settleview-api/internal/profile"
)

// ProfileHook caches the signed-in account's profile.
type ProfileHook struct {
	hookState
	c *Client
	p *profile.Profile
}

func NewProfileHook(c *Client) *ProfileHook {
	return &ProfileHook{c: c}
}

// Fetch replaces the cached profile; on failure the cache resets.
func (h *ProfileHook) Fetch(ctx context.Context) error {
	h.begin()
	var p profile.Profile
	if err := h.c.get(ctx, "/api/profile", &p); err != nil {
		h.finish(err, func() { h.p = nil })
		return err
	}
	h.finish(nil, func() { h.p = &p })
	return nil
}

// Update sends a partial update and caches the merged result the server
// returns. A failed update keeps the previous cache.
func (h *ProfileHook) Update(ctx context.Context, patch profile.Patch) (*profile.Profile, error) {
	h.begin()
	var p profile.Profile
	if err := h.c.put(ctx, "/api/profile", patch, &p); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() { h.p = &p })
	return &p, nil
}

// Profile returns the cached profile, nil before the first Fetch.
func (h *ProfileHook) Profile() *profile.Profile {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.p == nil {
		return nil
	}
	return h.p.Clone()
}

// FullName returns the cached display name, empty when nothing is cached.
func (h *ProfileHook) FullName() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.p == nil {
		return ""
	}
	return h.p.FullName()
}

// IsLawyer reports whether the cached profile belongs to a lawyer.
func (h *ProfileHook) IsLawyer() bool {
	return h.role() == profile.RoleLawyer
}

// IsAdmin reports whether the cached profile belongs to an admin.
func (h *ProfileHook) IsAdmin() bool {
	return h.role() == profile.RoleAdmin
}

func (h *ProfileHook) role() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.p == nil {
		return ""
	}
	return h.p.Role
}
