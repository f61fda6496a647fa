package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	u, err := svc.Register(ctx, "1", "john@example.com", "John Doe", RoleClient, "test123")
	require.NoError(t, err)
	require.Equal(t, "1", u.Sub)
	require.NotEqual(t, "test123", u.PasswordHash)

	got, err := svc.Authenticate(ctx, "john@example.com", "test123")
	require.NoError(t, err)
	require.Equal(t, "John Doe", got.Name)
	require.Equal(t, RoleClient, got.Role)

	_, err = svc.Authenticate(ctx, "john@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "test123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterUpsertsBySub(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "1", "john@example.com", "John Doe", RoleClient, "old")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "1", "john@example.com", "John Doe", RoleClient, "new")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "john@example.com", "old")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	got, err := svc.Authenticate(ctx, "john@example.com", "new")
	require.NoError(t, err)
	require.Equal(t, "1", got.Sub)
}
