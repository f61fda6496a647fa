package sessions

import (
	"context"
	"testing"
	"time"
)

func TestCreateAndValidateSession(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	r, err := svc.CreateSession(ctx, "1", "client", time.Hour)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if r == "" {
		t.Fatalf("expected refresh token")
	}

	sess, err := svc.ValidateRefresh(ctx, r)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if sess == nil || sess.Sub != "1" || sess.Role != "client" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := svc.DeleteRefresh(ctx, r); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if sess2, _ := svc.ValidateRefresh(ctx, r); sess2 != nil {
		t.Fatalf("expected session removed")
	}
}

func TestValidateRefreshExpired(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	expired := &Session{
		RefreshToken: "stale",
		Sub:          "1",
		Role:         "client",
		ExpiresAt:    time.Now().UTC().Add(-time.Minute),
	}
	if err := repo.Create(ctx, expired); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	sess, err := svc.ValidateRefresh(ctx, "stale")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil for expired session")
	}
	// expired entries are removed on sight
	if got, _ := repo.GetByRefresh(ctx, "stale"); got != nil {
		t.Fatalf("expected expired session deleted")
	}
}

func TestValidateUnknownRefresh(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	sess, err := svc.ValidateRefresh(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil session")
	}
}
