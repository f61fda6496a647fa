package profile

import (
	"fmt"
	"sync"

	"github.com/settleview/settleview-api/internal/store"
)

// Patch is a partial profile update. ID and Role are deliberately absent:
// neither changes after the account is created. Nil fields are left
// untouched.
type Patch struct {
	FirstName         *string       `json:"firstName"`
	LastName          *string       `json:"lastName"`
	Email             *string       `json:"email"`
	Phone             *string       `json:"phone"`
	Avatar            *string       `json:"avatar"`
	Specialization    []string      `json:"specialization"`
	YearsOfExperience *int          `json:"yearsOfExperience"`
	Languages         []string      `json:"languages"`
	Address           *Address      `json:"address"`
	Bio               *string       `json:"bio"`
	SocialLinks       *SocialLinks  `json:"socialLinks"`
	Availability      *Availability `json:"availability"`
}

// Service keeps one profile per account. Profiles are copy-on-read and
// copy-on-write like every other collection, so callers never alias the
// stored record.
type Service struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

func NewService() *Service {
	return &Service{profiles: make(map[string]*Profile)}
}

// Seed installs a pre-built profile for the owner.
func (s *Service) Seed(owner string, p *Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = owner
	s.profiles[owner] = p.Clone()
}

// Ensure creates a minimal profile for the owner when none exists yet.
// Called on registration so Get never comes up empty for a real account.
func (s *Service) Ensure(owner, firstName, lastName, email, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[owner]; ok {
		return
	}
	s.profiles[owner] = &Profile{
		ID:        owner,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
		Languages: []string{"en"},
	}
}

// Get returns the owner's profile.
func (s *Service) Get(owner string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[owner]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", owner, store.ErrNotFound)
	}
	return p.Clone(), nil
}

// Update merges the patch into the owner's profile. Stats stay read-only;
// they are derived elsewhere, not client-supplied.
func (s *Service) Update(owner string, patch Patch) (*Profile, error) {
	if patch.Email != nil && *patch.Email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", store.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.profiles[owner]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", owner, store.ErrNotFound)
	}
	merged := cur.Clone()
	if patch.FirstName != nil {
		merged.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		merged.LastName = *patch.LastName
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		merged.Avatar = *patch.Avatar
	}
	if patch.Specialization != nil {
		merged.Specialization = append([]string(nil), patch.Specialization...)
	}
	if patch.YearsOfExperience != nil {
		merged.YearsOfExperience = *patch.YearsOfExperience
	}
	if patch.Languages != nil {
		merged.Languages = append([]string(nil), patch.Languages...)
	}
	if patch.Address != nil {
		a := *patch.Address
		merged.Address = &a
	}
	if patch.Bio != nil {
		merged.Bio = *patch.Bio
	}
	if patch.SocialLinks != nil {
		sl := *patch.SocialLinks
		merged.SocialLinks = &sl
	}
	if patch.Availability != nil {
		av := *patch.Availability
		merged.Availability = &av
	}
	merged.ID = owner
	merged.Role = cur.Role
	merged.Stats = cur.Stats
	s.profiles[owner] = merged
	return merged.Clone(), nil
}

// SetStats replaces the read-only performance block.
func (s *Service) SetStats(owner string, st Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.profiles[owner]
	if !ok {
		return fmt.Errorf("profile %q: %w", owner, store.ErrNotFound)
	}
	merged := cur.Clone()
	merged.Stats = &st
	s.profiles[owner] = merged
	return nil
}
