package users

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/settleview/settleview-api/pkg/logger"
)

// ErrInvalidCredentials is returned when email or password do not match an
// account. Handlers map it to a 401 without leaking which part failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// dummyHash is compared against when no account matches the email so the
// two failure paths take comparable time.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Service handles account lookup and password verification
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate checks the email/password pair and returns the account on
// success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Errorf("user lookup failed: %v", err)
		return nil, err
	}
	if u == nil {
		// burn a comparison so missing accounts cost the same as bad passwords
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetBySub resolves the account behind a token subject.
func (s *Service) GetBySub(ctx context.Context, sub string) (*User, error) {
	return s.repo.GetBySub(ctx, sub)
}

// Register creates or refreshes an account with a freshly hashed password.
func (s *Service) Register(ctx context.Context, sub, email, name, role, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, &User{
		Sub:          sub,
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	})
}
