package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDocumentRepository struct {
	createDocumentFunc     func(ctx context.Context, doc models.Document) (models.Document, error)
	findDocumentsByOwner   func(ctx context.Context, userID int64) ([]models.Document, error)
	findDocumentByIDFunc   func(ctx context.Context, documentID int64) (models.Document, error)
	deleteDocumentByIDFunc func(ctx context.Context, documentID int64) error
	searchDocumentsFunc    func(ctx context.Context, filter models.SearchFilter) ([]models.Document, error)
}

func (m *mockDocumentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	return m.createDocumentFunc(ctx, doc)
}

func (m *mockDocumentRepository) FindDocumentsByOwner(ctx context.Context, userID int64) ([]models.Document, error) {
	return m.findDocumentsByOwner(ctx, userID)
}

func (m *mockDocumentRepository) FindDocumentByID(ctx context.Context, documentID int64) (models.Document, error) {
	return m.findDocumentByIDFunc(ctx, documentID)
}

func (m *mockDocumentRepository) DeleteDocumentByID(ctx context.Context, documentID int64) error {
	return m.deleteDocumentByIDFunc(ctx, documentID)
}

func (m *mockDocumentRepository) SearchDocuments(ctx context.Context, filter models.SearchFilter) ([]models.Document, error) {
	return m.searchDocumentsFunc(ctx, filter)
}

type mockFileStorage struct {
	saveFunc   func(ctx context.Context, src io.Reader, originalFilename string) (string, error)
	removeFunc func(ctx context.Context, relPath string) error
}

func (m *mockFileStorage) Save(ctx context.Context, src io.Reader, originalFilename string) (string, error) {
	return m.saveFunc(ctx, src, originalFilename)
}

func (m *mockFileStorage) Remove(ctx context.Context, relPath string) error {
	return m.removeFunc(ctx, relPath)
}

func (m *mockFileStorage) Dir() string { return "uploads" }

func TestUpload_Success(t *testing.T) {
	var inserted models.Document
	repo := &mockDocumentRepository{
		createDocumentFunc: func(ctx context.Context, doc models.Document) (models.Document, error) {
			inserted = doc
			doc.DocumentID = 11
			return doc, nil
		},
	}
	fileStorage := &mockFileStorage{
		saveFunc: func(ctx context.Context, src io.Reader, originalFilename string) (string, error) {
			content, err := io.ReadAll(src)
			require.NoError(t, err)
			assert.Equal(t, "file bytes", string(content))
			return "123-abcd.pdf", nil
		},
	}
	documentService := NewDocumentService(repo, fileStorage, logger.Nop())

	created, err := documentService.Upload(context.Background(), 3, strings.NewReader("file bytes"), DocumentUpload{
		OriginalFilename: "invoice.pdf",
		Name:             "march invoice",
		Type:             "invoice",
		Date:             "2024-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), created.DocumentID)
	assert.Equal(t, "123-abcd.pdf", inserted.FilePath)
	require.NotNil(t, inserted.UserID)
	assert.Equal(t, int64(3), *inserted.UserID)
	require.NotNil(t, inserted.Type)
	assert.Equal(t, "invoice", *inserted.Type)
	require.NotNil(t, inserted.Date)
	assert.Equal(t, "2024-03-01", *inserted.Date)
}

func TestUpload_NameDefaultsToOriginalFilename(t *testing.T) {
	repo := &mockDocumentRepository{
		createDocumentFunc: func(ctx context.Context, doc models.Document) (models.Document, error) {
			assert.Equal(t, "invoice.pdf", doc.Name)
			assert.Nil(t, doc.Type)
			assert.Nil(t, doc.Date)
			return doc, nil
		},
	}
	fileStorage := &mockFileStorage{
		saveFunc: func(ctx context.Context, src io.Reader, originalFilename string) (string, error) {
			return "123-abcd.pdf", nil
		},
	}
	documentService := NewDocumentService(repo, fileStorage, logger.Nop())

	_, err := documentService.Upload(context.Background(), 3, strings.NewReader("x"), DocumentUpload{
		OriginalFilename: "invoice.pdf",
	})
	assert.NoError(t, err)
}

func TestUpload_NoFile(t *testing.T) {
	documentService := NewDocumentService(&mockDocumentRepository{}, &mockFileStorage{}, logger.Nop())

	_, err := documentService.Upload(context.Background(), 3, nil, DocumentUpload{OriginalFilename: "a.pdf"})
	assert.ErrorIs(t, err, ErrNoFileProvided)
}

func TestUpload_InsertFailureLeavesBlobOrphaned(t *testing.T) {
	removed := false
	repo := &mockDocumentRepository{
		createDocumentFunc: func(ctx context.Context, doc models.Document) (models.Document, error) {
			return models.Document{}, errors.New("insert failed")
		},
	}
	fileStorage := &mockFileStorage{
		saveFunc: func(ctx context.Context, src io.Reader, originalFilename string) (string, error) {
			return "123-abcd.pdf", nil
		},
		removeFunc: func(ctx context.Context, relPath string) error {
			removed = true
			return nil
		},
	}
	documentService := NewDocumentService(repo, fileStorage, logger.Nop())

	_, err := documentService.Upload(context.Background(), 3, strings.NewReader("x"), DocumentUpload{OriginalFilename: "a.pdf"})
	require.Error(t, err)

	// no compensating blob delete, the orphan stays on disk
	assert.False(t, removed)
}

func TestDelete_Success(t *testing.T) {
	ownerID := int64(3)
	removedPath := ""
	rowDeleted := false
	repo := &mockDocumentRepository{
		findDocumentByIDFunc: func(ctx context.Context, documentID int64) (models.Document, error) {
			return models.Document{DocumentID: documentID, UserID: &ownerID, FilePath: "123-abcd.pdf"}, nil
		},
		deleteDocumentByIDFunc: func(ctx context.Context, documentID int64) error {
			rowDeleted = true
			return nil
		},
	}
	fileStorage := &mockFileStorage{
		removeFunc: func(ctx context.Context, relPath string) error {
			removedPath = relPath
			return nil
		},
	}
	documentService := NewDocumentService(repo, fileStorage, logger.Nop())

	require.NoError(t, documentService.Delete(context.Background(), 11, ownerID))
	assert.Equal(t, "123-abcd.pdf", removedPath)
	assert.True(t, rowDeleted)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockDocumentRepository{
		findDocumentByIDFunc: func(ctx context.Context, documentID int64) (models.Document, error) {
			return models.Document{}, store.ErrDocumentNotFound
		},
	}
	documentService := NewDocumentService(repo, &mockFileStorage{}, logger.Nop())

	err := documentService.Delete(context.Background(), 404, 3)
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestDelete_NotOwner(t *testing.T) {
	ownerID := int64(3)
	tests := []struct {
		name  string
		owner *int64
	}{
		{"different owner", &ownerID},
		{"owner removed", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockDocumentRepository{
				findDocumentByIDFunc: func(ctx context.Context, documentID int64) (models.Document, error) {
					return models.Document{DocumentID: documentID, UserID: tt.owner, FilePath: "a.pdf"}, nil
				},
				deleteDocumentByIDFunc: func(ctx context.Context, documentID int64) error {
					t.Fatal("row must not be deleted for a non-owner")
					return nil
				},
			}
			fileStorage := &mockFileStorage{
				removeFunc: func(ctx context.Context, relPath string) error {
					t.Fatal("blob must not be removed for a non-owner")
					return nil
				},
			}
			documentService := NewDocumentService(repo, fileStorage, logger.Nop())

			err := documentService.Delete(context.Background(), 11, 99)
			assert.ErrorIs(t, err, ErrNotDocumentOwner)
		})
	}
}

func TestDelete_BlobCleanupFailureStillDeletesRow(t *testing.T) {
	ownerID := int64(3)
	rowDeleted := false
	repo := &mockDocumentRepository{
		findDocumentByIDFunc: func(ctx context.Context, documentID int64) (models.Document, error) {
			return models.Document{DocumentID: documentID, UserID: &ownerID, FilePath: "gone.pdf"}, nil
		},
		deleteDocumentByIDFunc: func(ctx context.Context, documentID int64) error {
			rowDeleted = true
			return nil
		},
	}
	fileStorage := &mockFileStorage{
		removeFunc: func(ctx context.Context, relPath string) error {
			return errors.New("file already gone")
		},
	}
	documentService := NewDocumentService(repo, fileStorage, logger.Nop())

	assert.NoError(t, documentService.Delete(context.Background(), 11, ownerID))
	assert.True(t, rowDeleted)
}

func TestListByOwner_PassesThrough(t *testing.T) {
	repo := &mockDocumentRepository{
		findDocumentsByOwner: func(ctx context.Context, userID int64) ([]models.Document, error) {
			assert.Equal(t, int64(3), userID)
			return []models.Document{{DocumentID: 1}, {DocumentID: 2}}, nil
		},
	}
	documentService := NewDocumentService(repo, &mockFileStorage{}, logger.Nop())

	documents, err := documentService.ListByOwner(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, documents, 2)
}

func TestSearch_PassesFilter(t *testing.T) {
	repo := &mockDocumentRepository{
		searchDocumentsFunc: func(ctx context.Context, filter models.SearchFilter) ([]models.Document, error) {
			assert.Equal(t, "report", filter.Query)
			assert.Equal(t, "invoice", filter.Type)
			return nil, nil
		},
	}
	documentService := NewDocumentService(repo, &mockFileStorage{}, logger.Nop())

	_, err := documentService.Search(context.Background(), models.SearchFilter{Query: "report", Type: "invoice"})
	assert.NoError(t, err)
}
