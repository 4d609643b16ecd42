package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-doc-vault/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] when the email is
	// already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email. Returns
	// [ErrNoUserWasFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// DocumentRepository provides persistence for document metadata rows.
type DocumentRepository interface {
	// CreateDocument inserts a new document row and returns it with
	// server-assigned fields populated.
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)

	// FindDocumentsByOwner returns all documents of one owner, newest first.
	FindDocumentsByOwner(ctx context.Context, userID int64) ([]models.Document, error)

	// FindDocumentByID retrieves a single document row. Returns
	// [ErrDocumentNotFound] when the id does not exist.
	FindDocumentByID(ctx context.Context, documentID int64) (models.Document, error)

	// DeleteDocumentByID removes a document row. Returns
	// [ErrDocumentNotFound] when the id does not exist.
	DeleteDocumentByID(ctx context.Context, documentID int64) error

	// SearchDocuments runs the public search with optional keyword, type
	// and date filters, capped at 200 rows, joined with uploader emails.
	SearchDocuments(ctx context.Context, filter models.SearchFilter) ([]models.Document, error)
}

// DocumentFileStorage persists uploaded file content outside the
// relational store. Paths returned and accepted are always relative to
// the storage root.
type DocumentFileStorage interface {
	// Save streams src to a new blob under a generated collision-free
	// name and returns that name.
	Save(ctx context.Context, src io.Reader, originalFilename string) (string, error)

	// Remove deletes the blob stored under relPath.
	Remove(ctx context.Context, relPath string) error

	// Dir returns the storage root directory.
	Dir() string
}
