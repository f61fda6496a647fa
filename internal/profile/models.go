package profile

const (
	RoleClient = "client"
	RoleLawyer = "lawyer"
	RoleAdmin  = "admin"
)

// TimeRange is one availability window within a day ("09:00" - "17:00").
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability lists the working windows per weekday.
type Availability struct {
	Monday    []TimeRange `json:"monday"`
	Tuesday   []TimeRange `json:"tuesday"`
	Wednesday []TimeRange `json:"wednesday"`
	Thursday  []TimeRange `json:"thursday"`
	Friday    []TimeRange `json:"friday"`
	Saturday  []TimeRange `json:"saturday"`
	Sunday    []TimeRange `json:"sunday"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Stats is the read-only performance block on lawyer profiles.
type Stats struct {
	TotalCases      int     `json:"totalCases"`
	ResolvedCases   int     `json:"resolvedCases"`
	ClientRating    float64 `json:"clientRating"`
	ResponseRate    float64 `json:"responseRate"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

// Profile is the account's public face. ID and Role are immutable through
// updates; everything else is user-editable.
type Profile struct {
	ID                string        `json:"id"`
	FirstName         string        `json:"firstName"`
	LastName          string        `json:"lastName"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone,omitempty"`
	Avatar            string        `json:"avatar,omitempty"`
	Role              string        `json:"role"`
	Specialization    []string      `json:"specialization,omitempty"`
	YearsOfExperience int           `json:"yearsOfExperience,omitempty"`
	Languages         []string      `json:"languages"`
	Address           *Address      `json:"address,omitempty"`
	Bio               string        `json:"bio,omitempty"`
	SocialLinks       *SocialLinks  `json:"socialLinks,omitempty"`
	Availability      *Availability `json:"availability,omitempty"`
	Stats             *Stats        `json:"stats,omitempty"`
}

// FullName joins first and last name for display.
func (p *Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Clone deep-copies the profile including its nested blocks.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Specialization = append([]string(nil), p.Specialization...)
	cp.Languages = append([]string(nil), p.Languages...)
	if p.Address != nil {
		a := *p.Address
		cp.Address = &a
	}
	if p.SocialLinks != nil {
		s := *p.SocialLinks
		cp.SocialLinks = &s
	}
	if p.Availability != nil {
		av := Availability{
			Monday:    append([]TimeRange(nil), p.Availability.Monday...),
			Tuesday:   append([]TimeRange(nil), p.Availability.Tuesday...),
			Wednesday: append([]TimeRange(nil), p.Availability.Wednesday...),
			Thursday:  append([]TimeRange(nil), p.Availability.Thursday...),
			Friday:    append([]TimeRange(nil), p.Availability.Friday...),
			Saturday:  append([]TimeRange(nil), p.Availability.Saturday...),
			Sunday:    append([]TimeRange(nil), p.Availability.Sunday...),
		}
		cp.Availability = &av
	}
	if p.Stats != nil {
		st := *p.Stats
		cp.Stats = &st
	}
	return &cp
}
