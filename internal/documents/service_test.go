package documents

import (
	"context"
	"testing"

	"github.com/settleview/settleview-api/internal/store"
	"github.com/stretchr/testify/require"
)

func TestUploadAssignsIdAndPendingStatus(t *testing.T) {
	svc := NewService(nil, nil)

	doc, err := svc.Upload(context.Background(), "u1", UploadInput{Name: "agreement.pdf", Type: "PDF", Size: "2.5 MB"})
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.Equal(t, StatusPending, doc.Status)
	require.False(t, doc.UploadedAt.IsZero())

	list := svc.List("u1")
	require.Len(t, list, 1)
	require.Equal(t, doc.ID, list[0].ID)
}

func TestUploadValidatesRequiredFields(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.Upload(context.Background(), "u1", UploadInput{Type: "PDF", Size: "1 MB"})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = svc.Upload(context.Background(), "u1", UploadInput{Name: "x.pdf", Size: "1 MB"})
	require.ErrorIs(t, err, store.ErrValidation)

	require.Empty(t, svc.List("u1"))
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	svc := NewService(nil, nil)
	doc, err := svc.Upload(context.Background(), "u1", UploadInput{Name: "a.pdf", Type: "PDF", Size: "1 MB"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("u1", doc.ID))
	require.ErrorIs(t, svc.Delete("u1", doc.ID), store.ErrNotFound)
}

func TestUpdateStatusRejectsUnknownState(t *testing.T) {
	svc := NewService(nil, nil)
	doc, err := svc.Upload(context.Background(), "u1", UploadInput{Name: "a.pdf", Type: "PDF", Size: "1 MB"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus("u1", doc.ID, "archived")
	require.ErrorIs(t, err, store.ErrValidation)

	got, err := svc.UpdateStatus("u1", doc.ID, StatusReady)
	require.NoError(t, err)
	require.Equal(t, StatusReady, got.Status)
}
