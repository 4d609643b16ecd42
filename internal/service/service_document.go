package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// documentService is the concrete implementation of DocumentService.
// It coordinates the documents table with the on-disk blob storage.
// The two are not transactionally linked: a failed insert after a
// successful blob write leaves an orphaned blob behind, which is
// tolerated by design.
type documentService struct {
	documentRepository store.DocumentRepository
	fileStorage        store.DocumentFileStorage
	logger             *logger.Logger
}

// NewDocumentService constructs a DocumentService wired to the given
// repository and blob storage.
func NewDocumentService(documentRepository store.DocumentRepository, fileStorage store.DocumentFileStorage, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		fileStorage:        fileStorage,
		logger:             logger,
	}
}

// Upload streams the file to blob storage under a generated unique name,
// then inserts the metadata row referencing the stored path.
//
// The document name defaults to the original filename when the uploader
// supplies none; type and date stay NULL when absent. When the insert
// fails after the blob write succeeded, the blob is left orphaned; the
// sequence is deliberately not atomic.
func (d *documentService) Upload(ctx context.Context, ownerID int64, file io.Reader, upload DocumentUpload) (models.Document, error) {
	log := logger.FromContext(ctx)

	if file == nil {
		return models.Document{}, ErrNoFileProvided
	}

	storedPath, err := d.fileStorage.Save(ctx, file, upload.OriginalFilename)
	if err != nil {
		log.Err(err).Msg("saving uploaded file failed")
		return models.Document{}, fmt.Errorf("saving uploaded file failed: %w", err)
	}

	name := upload.Name
	if name == "" {
		name = upload.OriginalFilename
	}

	doc := models.Document{
		UserID:           &ownerID,
		Name:             name,
		Type:             optional(upload.Type),
		Date:             optional(upload.Date),
		FilePath:         storedPath,
		OriginalFilename: upload.OriginalFilename,
	}

	created, err := d.documentRepository.CreateDocument(ctx, doc)
	if err != nil {
		log.Err(err).Str("file_path", storedPath).Msg("document insert failed, blob is orphaned")
		return models.Document{}, fmt.Errorf("document insert failed: %w", err)
	}

	return created, nil
}

// ListByOwner returns all documents owned by ownerID, newest first.
func (d *documentService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Document, error) {
	documents, err := d.documentRepository.FindDocumentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing documents failed: %w", err)
	}

	return documents, nil
}

// Search runs the public document search. No ownership filtering is
// applied: every stored document is searchable.
func (d *documentService) Search(ctx context.Context, filter models.SearchFilter) ([]models.Document, error) {
	documents, err := d.documentRepository.SearchDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("document search failed: %w", err)
	}

	return documents, nil
}

// Delete removes the document with the given id on behalf of requesterID.
//
// It fails with store.ErrDocumentNotFound when no such row exists and
// with ErrNotDocumentOwner when the row belongs to someone else (or to
// nobody, after its owner was removed). The referenced blob is removed
// best-effort before the row: a cleanup failure is logged and ignored,
// the row is deleted either way. Row deletion is the operation's
// contract, blob cleanup is not.
func (d *documentService) Delete(ctx context.Context, documentID, requesterID int64) error {
	log := logger.FromContext(ctx)

	doc, err := d.documentRepository.FindDocumentByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("document lookup failed: %w", err)
	}

	if doc.UserID == nil || *doc.UserID != requesterID {
		log.Warn().Int64("document_id", documentID).Int64("requester_id", requesterID).Msg("delete attempt by non-owner")
		return ErrNotDocumentOwner
	}

	if err := d.fileStorage.Remove(ctx, doc.FilePath); err != nil {
		log.Warn().Err(err).Str("file_path", doc.FilePath).Msg("blob cleanup failed, deleting row anyway")
	}

	if err := d.documentRepository.DeleteDocumentByID(ctx, documentID); err != nil {
		return fmt.Errorf("document delete failed: %w", err)
	}

	return nil
}

// optional maps an empty string to a NULL-able nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
