package settings

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	VisibilityPublic   = "public"
	VisibilityPrivate  = "private"
	VisibilityContacts = "contacts"
)

// ChannelToggles switches notifications per dashboard area for one delivery
// channel.
type ChannelToggles struct {
	Appointments bool `json:"appointments"`
	Messages     bool `json:"messages"`
	Documents    bool `json:"documents"`
	Billing      bool `json:"billing"`
}

type NotificationSettings struct {
	Email ChannelToggles `json:"email"`
	Push  ChannelToggles `json:"push"`
}

type DisplaySettings struct {
	Theme      string `json:"theme"`
	Language   string `json:"language"`
	Timezone   string `json:"timezone"`
	DateFormat string `json:"dateFormat"`
	TimeFormat string `json:"timeFormat"`
}

type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility"`
	ActivityStatus    bool   `json:"activityStatus"`
	ReadReceipts      bool   `json:"readReceipts"`
}

// Settings is the full per-account preference set. Every account has one;
// reads fall back to Defaults until the owner saves something.
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Display       DisplaySettings      `json:"display"`
	Privacy       PrivacySettings      `json:"privacy"`
}

// Defaults is the preference set of a fresh account: all notifications on,
// system theme, US date formats, private profile.
func Defaults() Settings {
	on := ChannelToggles{Appointments: true, Messages: true, Documents: true, Billing: true}
	return Settings{
		Notifications: NotificationSettings{Email: on, Push: on},
		Display: DisplaySettings{
			Theme:      ThemeSystem,
			Language:   "en",
			Timezone:   "UTC",
			DateFormat: "MM/DD/YYYY",
			TimeFormat: "12h",
		},
		Privacy: PrivacySettings{
			ProfileVisibility: VisibilityPrivate,
		},
	}
}
