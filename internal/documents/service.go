package documents

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/settleview/settleview-api/internal/store"
	"github.com/settleview/settleview-api/pkg/logger"
)

// BlobStore persists raw file content. Optional; document metadata works
// without it.
type BlobStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

// Notifier publishes a dashboard notification for the owner.
type Notifier interface {
	Notify(owner, kind, title, message string, refs map[string]string)
}

// UploadInput carries document metadata plus (optionally) the file body.
type UploadInput struct {
	Name        string
	Type        string
	Size        string
	Content     io.Reader
	ContentLen  int64
	ContentType string
}

// Service owns the documents collection for all users.
type Service struct {
	col    *store.Collection[*Document]
	blobs  BlobStore
	notify Notifier
}

func NewService(blobs BlobStore, notify Notifier) *Service {
	return &Service{
		col:    store.NewCollection[*Document]("documents", "doc-"),
		blobs:  blobs,
		notify: notify,
	}
}

// Seed inserts fixture documents for the owner, keeping preset ids.
func (s *Service) Seed(owner string, docs ...*Document) { s.col.Seed(owner, docs...) }

// List returns the owner's documents in upload order.
func (s *Service) List(owner string) []*Document { return s.col.List(owner) }

func (s *Service) Get(owner, id string) (*Document, error) { return s.col.Get(owner, id) }

// Upload records document metadata and, when a blob store is configured and
// content is present, stores the file body under the new document id.
func (s *Service) Upload(ctx context.Context, owner string, in UploadInput) (*Document, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", store.ErrValidation)
	}
	if in.Type == "" {
		return nil, fmt.Errorf("%w: type is required", store.ErrValidation)
	}
	if in.Size == "" {
		return nil, fmt.Errorf("%w: size is required", store.ErrValidation)
	}

	doc := s.col.Create(owner, &Document{
		Name:       in.Name,
		Type:       in.Type,
		Size:       in.Size,
		UploadedAt: time.Now().UTC(),
		Status:     StatusPending,
	})

	if s.blobs != nil && in.Content != nil {
		if err := s.blobs.UploadFile(ctx, doc.ID+"/"+doc.Name, in.Content, in.ContentLen, in.ContentType); err != nil {
			logger.Warnf("document %s: blob upload failed: %v", doc.ID, err)
			doc, _ = s.col.Update(owner, doc.ID, func(d *Document) { d.Status = StatusError })
			return doc, nil
		}
		doc, _ = s.col.Update(owner, doc.ID, func(d *Document) { d.Status = StatusProcessing })
	}

	if s.notify != nil {
		s.notify.Notify(owner, "document", "Document uploaded",
			fmt.Sprintf("%s has been uploaded and is being processed.", doc.Name),
			map[string]string{"documentId": doc.ID})
	}
	return doc, nil
}

// UpdateStatus moves a document to a new lifecycle state.
func (s *Service) UpdateStatus(owner, id, status string) (*Document, error) {
	switch status {
	case StatusPending, StatusProcessing, StatusReady, StatusError:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", store.ErrValidation, status)
	}
	return s.col.Update(owner, id, func(d *Document) { d.Status = status })
}

// Delete removes the document metadata. Blob content, when present, is left
// to the storage lifecycle policy.
func (s *Service) Delete(owner, id string) error {
	return s.col.Delete(owner, id, nil)
}
