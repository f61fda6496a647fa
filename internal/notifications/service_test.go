package notifications

import (
	"testing"
	"time"

	"github.com/settleview/settleview-api/internal/store"
	"github.com/stretchr/testify/require"
)

func TestNotifyStoresAndPublishes(t *testing.T) {
	svc := NewService(NewBroker(4))

	ch, cancel := svc.Subscribe("u1")
	defer cancel()

	svc.Notify("u1", KindDocument, "Document uploaded", "agreement.pdf uploaded", map[string]string{"documentId": "doc-1"})

	select {
	case n := <-ch:
		require.Equal(t, KindDocument, n.Type)
		require.Equal(t, "doc-1", n.Data["documentId"])
		require.False(t, n.Read)
	case <-time.After(time.Second):
		t.Fatal("expected a published notification")
	}

	list := svc.List("u1")
	require.Len(t, list, 1)
	require.Len(t, svc.Unread("u1"), 1)
}

func TestNotifyScopedToOwner(t *testing.T) {
	svc := NewService(NewBroker(4))

	other, cancel := svc.Subscribe("u2")
	defer cancel()

	svc.Notify("u1", KindSystem, "t", "m", nil)

	select {
	case <-other:
		t.Fatal("u2 must not receive u1 events")
	case <-time.After(50 * time.Millisecond):
	}
	require.Empty(t, svc.List("u2"))
}

func TestMarkRead(t *testing.T) {
	svc := NewService(NewBroker(4))
	svc.Notify("u1", KindBilling, "Invoice due", "INV-003 is due", map[string]string{"invoiceId": "INV-003"})

	n := svc.List("u1")[0]
	got, err := svc.MarkRead("u1", n.ID)
	require.NoError(t, err)
	require.True(t, got.Read)
	require.Empty(t, svc.Unread("u1"))

	_, err = svc.MarkRead("u1", "ntf-404")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestBrokerCancelIdempotentAndOrdered(t *testing.T) {
	b := NewBroker(8)
	ch, cancel := b.Subscribe("u1")

	for i := 0; i < 3; i++ {
		b.Publish("u1", &Notification{ID: string(rune('a' + i))})
	}
	require.Equal(t, "a", (<-ch).ID)
	require.Equal(t, "b", (<-ch).ID)
	require.Equal(t, "c", (<-ch).ID)

	cancel()
	cancel() // second cancel is a no-op
	require.Equal(t, 0, b.SubscriberCount("u1"))

	_, open := <-ch
	require.False(t, open)
}

func TestBrokerDropsWhenSubscriberFull(t *testing.T) {
	b := NewBroker(1)
	ch, cancel := b.Subscribe("u1")
	defer cancel()

	b.Publish("u1", &Notification{ID: "first"})
	b.Publish("u1", &Notification{ID: "dropped"})

	require.Equal(t, "first", (<-ch).ID)
	select {
	case n := <-ch:
		t.Fatalf("expected drop, got %s", n.ID)
	default:
	}
}
