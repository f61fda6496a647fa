package client

import (
	"context"

	"github.com/settleview/settleview-api/internal/settings"
)

// SettingsHook caches the signed-in account's preferences.
type SettingsHook struct {
	hookState
	c      *Client
	s      settings.Settings
	loaded bool
}

func NewSettingsHook(c *Client) *SettingsHook {
	return &SettingsHook{c: c}
}

// Fetch replaces the cache; on failure it resets to unloaded.
func (h *SettingsHook) Fetch(ctx context.Context) error {
	h.begin()
	var s settings.Settings
	if err := h.c.get(ctx, "/api/settings", &s); err != nil {
		h.finish(err, func() { h.s, h.loaded = settings.Settings{}, false })
		return err
	}
	h.finish(nil, func() { h.s, h.loaded = s, true })
	return nil
}

// Update sends a partial patch and caches the merged set the server
// returns. A failed update keeps the previous cache.
func (h *SettingsHook) Update(ctx context.Context, patch settings.Patch) (settings.Settings, error) {
	h.begin()
	var s settings.Settings
	if err := h.c.put(ctx, "/api/settings", patch, &s); err != nil {
		h.finish(err, nil)
		return settings.Settings{}, err
	}
	h.finish(nil, func() { h.s, h.loaded = s, true })
	return s, nil
}

// UpdateDisplay patches only the display section.
func (h *SettingsHook) UpdateDisplay(ctx context.Context, p settings.DisplayPatch) (settings.Settings, error) {
	return h.Update(ctx, settings.Patch{Display: &p})
}

// UpdateNotifications patches only the notification toggles.
func (h *SettingsHook) UpdateNotifications(ctx context.Context, p settings.NotificationsPatch) (settings.Settings, error) {
	return h.Update(ctx, settings.Patch{Notifications: &p})
}

// UpdatePrivacy patches only the privacy section.
func (h *SettingsHook) UpdatePrivacy(ctx context.Context, p settings.PrivacyPatch) (settings.Settings, error) {
	return h.Update(ctx, settings.Patch{Privacy: &p})
}

// Settings returns the cached set, falling back to defaults before the
// first Fetch so display code always has something to render.
func (h *SettingsHook) Settings() settings.Settings {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.loaded {
		return settings.Defaults()
	}
	return h.s
}

// Theme returns the cached display theme.
func (h *SettingsHook) Theme() string {
	return h.Settings().Display.Theme
}
