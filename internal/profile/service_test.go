package profile

import (
	"testing"

	"github.com/settleview/settleview-api/internal/store"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedProfile(t *testing.T) *Service {
	t.Helper()
	svc := NewService()
	svc.Ensure("1", "John", "Doe", "john@example.com", RoleClient)
	return svc
}

func TestEnsureAndGet(t *testing.T) {
	svc := seedProfile(t)

	p, err := svc.Get("1")
	require.NoError(t, err)
	require.Equal(t, "1", p.ID)
	require.Equal(t, "John Doe", p.FullName())
	require.Equal(t, RoleClient, p.Role)
	require.Equal(t, []string{"en"}, p.Languages)

	// a second Ensure does not overwrite
	svc.Ensure("1", "Someone", "Else", "other@example.com", RoleAdmin)
	p, err = svc.Get("1")
	require.NoError(t, err)
	require.Equal(t, "John Doe", p.FullName())

	_, err = svc.Get("2")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateMergesPatch(t *testing.T) {
	svc := seedProfile(t)

	p, err := svc.Update("1", Patch{
		Phone:     strPtr("+1 555 0100"),
		Bio:       strPtr("Settling in."),
		Languages: []string{"en", "de"},
		Address:   &Address{Street: "42 Harbour View Drive", City: "Sydney", Country: "AU"},
	})
	require.NoError(t, err)
	require.Equal(t, "+1 555 0100", p.Phone)
	require.Equal(t, []string{"en", "de"}, p.Languages)
	require.Equal(t, "Sydney", p.Address.City)

	// untouched fields survive
	require.Equal(t, "John", p.FirstName)
	require.Equal(t, "john@example.com", p.Email)
}

func TestUpdateKeepsIDRoleAndStats(t *testing.T) {
	svc := seedProfile(t)
	require.NoError(t, svc.SetStats("1", Stats{TotalCases: 12, ResolvedCases: 9}))

	p, err := svc.Update("1", Patch{FirstName: strPtr("Johnny")})
	require.NoError(t, err)
	require.Equal(t, "1", p.ID)
	require.Equal(t, RoleClient, p.Role)
	require.Equal(t, 12, p.Stats.TotalCases)
}

func TestUpdateValidation(t *testing.T) {
	svc := seedProfile(t)

	_, err := svc.Update("1", Patch{Email: strPtr("")})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = svc.Update("2", Patch{Bio: strPtr("ghost")})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	svc := seedProfile(t)

	p, err := svc.Get("1")
	require.NoError(t, err)
	p.FirstName = "Mallory"
	p.Languages[0] = "xx"

	again, err := svc.Get("1")
	require.NoError(t, err)
	require.Equal(t, "John", again.FirstName)
	require.Equal(t, []string{"en"}, again.Languages)
}
