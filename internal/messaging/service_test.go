package messaging

import (
	"fmt"
	"sync"
	"testing"

	"github.com/settleview/settleview-api/internal/store"
	"github.com/stretchr/testify/require"
)

func seedConversation(t *testing.T) *Service {
	t.Helper()
	svc := NewService(nil)
	svc.SeedConversations("u1", &Conversation{
		ID: "conv-1", Name: "John Smith", Role: "Settlement Agent",
		LastMessage: "I've reviewed the documents you sent.", Unread: 2,
	})
	return svc
}

func TestSendUpdatesConversationCache(t *testing.T) {
	svc := seedConversation(t)

	msg, err := svc.Send("u1", "conv-1", "Thanks, looks good.")
	require.NoError(t, err)
	require.NotEmpty(t, msg.ID)
	require.Equal(t, "You", msg.Sender)
	require.Equal(t, "conv-1", msg.ConversationID)

	snap := svc.Snapshot("u1")
	require.Len(t, snap.Messages, 1)
	require.Len(t, snap.Conversations, 1)
	require.Equal(t, "Thanks, looks good.", snap.Conversations[0].LastMessage)
	require.Equal(t, 0, snap.Conversations[0].Unread)
}

func TestSendValidation(t *testing.T) {
	svc := seedConversation(t)

	_, err := svc.Send("u1", "conv-1", "")
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = svc.Send("u1", "", "hi")
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = svc.Send("u1", "conv-404", "hi")
	require.ErrorIs(t, err, store.ErrNotFound)

	// failed sends leave no partial state behind
	require.Equal(t, 0, svc.MessageCount("u1"))
}

func TestSendScopedToOwner(t *testing.T) {
	svc := seedConversation(t)

	_, err := svc.Send("u2", "conv-1", "not my conversation")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Equal(t, 0, svc.MessageCount("u1"))
}

func TestSnapshotNeverShowsMessageBeforeConversationCache(t *testing.T) {
	svc := seedConversation(t)

	const sends = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < sends; i++ {
			_, err := svc.Send("u1", "conv-1", fmt.Sprintf("update %d", i))
			require.NoError(t, err)
		}
	}()

	// every snapshot must show the newest message and the conversation's
	// lastMessage in agreement
	for done := false; !done; {
		snap := svc.Snapshot("u1")
		if n := len(snap.Messages); n > 0 {
			require.Equal(t, snap.Messages[n-1].Content, snap.Conversations[0].LastMessage)
			done = n == sends
		}
	}
	wg.Wait()
}

func TestMarkRead(t *testing.T) {
	svc := seedConversation(t)

	conv, err := svc.MarkRead("u1", "conv-1")
	require.NoError(t, err)
	require.Equal(t, 0, conv.Unread)
	require.Equal(t, 0, svc.UnreadCount("u1"))

	_, err = svc.MarkRead("u1", "conv-9")
	require.ErrorIs(t, err, store.ErrNotFound)
}
