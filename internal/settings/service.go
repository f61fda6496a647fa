package settings

import (
	"fmt"
	"sync"

	"github.com/settleview/settleview-api/internal/store"
)

// ChannelPatch is a partial update to one delivery channel.
type ChannelPatch struct {
	Appointments *bool `json:"appointments"`
	Messages     *bool `json:"messages"`
	Documents    *bool `json:"documents"`
	Billing      *bool `json:"billing"`
}

type NotificationsPatch struct {
	Email *ChannelPatch `json:"email"`
	Push  *ChannelPatch `json:"push"`
}

type DisplayPatch struct {
	Theme      *string `json:"theme"`
	Language   *string `json:"language"`
	Timezone   *string `json:"timezone"`
	DateFormat *string `json:"dateFormat"`
	TimeFormat *string `json:"timeFormat"`
}

type PrivacyPatch struct {
	ProfileVisibility *string `json:"profileVisibility"`
	ActivityStatus    *bool   `json:"activityStatus"`
	ReadReceipts      *bool   `json:"readReceipts"`
}

// Patch is a partial settings update. Absent sections and nil fields are
// left untouched, so the client can save a single toggle without resending
// the whole preference set.
type Patch struct {
	Notifications *NotificationsPatch `json:"notifications"`
	Display       *DisplayPatch       `json:"display"`
	Privacy       *PrivacyPatch       `json:"privacy"`
}

// Service keeps one preference set per account. Accounts that never saved
// anything read as Defaults.
type Service struct {
	mu       sync.RWMutex
	accounts map[string]*Settings
}

func NewService() *Service {
	return &Service{accounts: make(map[string]*Settings)}
}

// Get returns the owner's settings, falling back to Defaults.
func (s *Service) Get(owner string) Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cur, ok := s.accounts[owner]; ok {
		return *cur
	}
	return Defaults()
}

// Update merges the patch into the owner's settings and returns the result.
// Enum fields are validated before anything is stored.
func (s *Service) Update(owner string, patch Patch) (Settings, error) {
	if err := validate(patch); err != nil {
		return Settings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := Defaults()
	if cur, ok := s.accounts[owner]; ok {
		merged = *cur
	}
	if patch.Notifications != nil {
		applyChannel(&merged.Notifications.Email, patch.Notifications.Email)
		applyChannel(&merged.Notifications.Push, patch.Notifications.Push)
	}
	if d := patch.Display; d != nil {
		setStr(&merged.Display.Theme, d.Theme)
		setStr(&merged.Display.Language, d.Language)
		setStr(&merged.Display.Timezone, d.Timezone)
		setStr(&merged.Display.DateFormat, d.DateFormat)
		setStr(&merged.Display.TimeFormat, d.TimeFormat)
	}
	if p := patch.Privacy; p != nil {
		setStr(&merged.Privacy.ProfileVisibility, p.ProfileVisibility)
		setBool(&merged.Privacy.ActivityStatus, p.ActivityStatus)
		setBool(&merged.Privacy.ReadReceipts, p.ReadReceipts)
	}
	s.accounts[owner] = &merged
	return merged, nil
}

func applyChannel(dst *ChannelToggles, p *ChannelPatch) {
	if p == nil {
		return
	}
	setBool(&dst.Appointments, p.Appointments)
	setBool(&dst.Messages, p.Messages)
	setBool(&dst.Documents, p.Documents)
	setBool(&dst.Billing, p.Billing)
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func validate(patch Patch) error {
	if d := patch.Display; d != nil {
		if err := oneOf("theme", d.Theme, ThemeLight, ThemeDark, ThemeSystem); err != nil {
			return err
		}
		if err := oneOf("dateFormat", d.DateFormat, "MM/DD/YYYY", "DD/MM/YYYY", "YYYY-MM-DD"); err != nil {
			return err
		}
		if err := oneOf("timeFormat", d.TimeFormat, "12h", "24h"); err != nil {
			return err
		}
	}
	if p := patch.Privacy; p != nil {
		if err := oneOf("profileVisibility", p.ProfileVisibility, VisibilityPublic, VisibilityPrivate, VisibilityContacts); err != nil {
			return err
		}
	}
	return nil
}

func oneOf(field string, v *string, allowed ...string) error {
	if v == nil {
		return nil
	}
	for _, a := range allowed {
		if *v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: invalid %s %q", store.ErrValidation, field, *v)
}
