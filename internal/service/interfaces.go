package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-doc-vault/models"
)

// AuthService handles user registration, credential verification, and
// session token lifecycle.
type AuthService interface {
	// Register creates a new user account from signup data.
	Register(ctx context.Context, req models.AuthRequest) (models.User, error)

	// Login authenticates an existing user by email and password.
	Login(ctx context.Context, req models.AuthRequest) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and extracts its identity claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DocumentUpload carries the metadata accompanying an uploaded file.
// Name, Type and Date are optional; OriginalFilename is taken from the
// multipart part and is always present.
type DocumentUpload struct {
	OriginalFilename string
	Name             string
	Type             string
	Date             string
}

// DocumentService handles document creation, listing, public search and
// deletion, coordinating the metadata rows with the blob storage.
type DocumentService interface {
	// Upload stores the file content and inserts the metadata row.
	Upload(ctx context.Context, ownerID int64, file io.Reader, upload DocumentUpload) (models.Document, error)

	// ListByOwner returns the requester's documents, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Document, error)

	// Search runs the public unauthenticated document search.
	Search(ctx context.Context, filter models.SearchFilter) ([]models.Document, error)

	// Delete removes a document owned by requesterID, attempting blob
	// cleanup first; cleanup failure never fails the operation.
	Delete(ctx context.Context, documentID, requesterID int64) error
}
