package seed

import (
	"context"
	"testing"

	"github.com/settleview/settleview-api/internal/analytics"
	"github.com/settleview/settleview-api/internal/appointments"
	"github.com/settleview/settleview-api/internal/billing"
	"github.com/settleview/settleview-api/internal/cases"
	"github.com/settleview/settleview-api/internal/documents"
	"github.com/settleview/settleview-api/internal/messaging"
	"github.com/settleview/settleview-api/internal/notifications"
	"github.com/settleview/settleview-api/internal/profile"
	"github.com/settleview/settleview-api/internal/users"
)

func TestDemoSeedsFixtures(t *testing.T) {
	ntfs := notifications.NewService(notifications.NewBroker(4))
	svcs := Services{
		Users:         users.NewService(users.NewMemoryRepository()),
		Documents:     documents.NewService(nil, ntfs),
		Appointments:  appointments.NewService(ntfs),
		Billing:       billing.NewService(),
		Messaging:     messaging.NewService(ntfs),
		Cases:         cases.NewService(ntfs),
		Notifications: ntfs,
		Profile:       profile.NewService(),
	}
	svcs.Analytics = analytics.NewService(svcs.Documents, svcs.Appointments, svcs.Billing, svcs.Messaging, svcs.Cases)

	if err := Demo(context.Background(), svcs); err != nil {
		t.Fatalf("Demo: %v", err)
	}

	if _, err := svcs.Users.Authenticate(context.Background(), DemoEmail, DemoPassword); err != nil {
		t.Fatalf("demo credentials rejected: %v", err)
	}

	if got := len(svcs.Documents.List(DemoSub)); got != 2 {
		t.Errorf("documents = %d, want 2", got)
	}
	if got := len(svcs.Appointments.List(DemoSub)); got != 2 {
		t.Errorf("appointments = %d, want 2", got)
	}
	if got := svcs.Billing.TotalOutstanding(DemoSub); got != 2000 {
		t.Errorf("outstanding = %v, want 2000", got)
	}
	if got := svcs.Messaging.UnreadCount(DemoSub); got != 2 {
		t.Errorf("unread = %d, want 2", got)
	}
	if got := svcs.Cases.Stats(DemoSub).Total; got != 2 {
		t.Errorf("cases = %d, want 2", got)
	}
	if got := len(svcs.Notifications.List(DemoSub)); got != 3 {
		t.Errorf("notifications = %d, want 3", got)
	}
	if got := len(svcs.Analytics.Monthly()); got != 6 {
		t.Errorf("monthly stats = %d, want 6", got)
	}
	if p, err := svcs.Profile.Get(DemoSub); err != nil {
		t.Errorf("demo profile missing: %v", err)
	} else if p.FullName() != DemoName {
		t.Errorf("profile name = %q, want %q", p.FullName(), DemoName)
	}

	// fixtures are owner scoped; another user sees nothing
	if got := len(svcs.Documents.List("2")); got != 0 {
		t.Errorf("other user's documents = %d, want 0", got)
	}
}

func TestDemoIsIdempotentForUser(t *testing.T) {
	ntfs := notifications.NewService(notifications.NewBroker(4))
	svcs := Services{
		Users:         users.NewService(users.NewMemoryRepository()),
		Documents:     documents.NewService(nil, ntfs),
		Appointments:  appointments.NewService(ntfs),
		Billing:       billing.NewService(),
		Messaging:     messaging.NewService(ntfs),
		Cases:         cases.NewService(ntfs),
		Notifications: ntfs,
		Profile:       profile.NewService(),
	}
	svcs.Analytics = analytics.NewService(svcs.Documents, svcs.Appointments, svcs.Billing, svcs.Messaging, svcs.Cases)

	for i := 0; i < 2; i++ {
		if err := Demo(context.Background(), svcs); err != nil {
			t.Fatalf("Demo run %d: %v", i+1, err)
		}
	}
	if _, err := svcs.Users.Authenticate(context.Background(), DemoEmail, DemoPassword); err != nil {
		t.Fatalf("demo credentials rejected after reseed: %v", err)
	}
}
