package store

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// Storages bundles every persistence backend the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
	FileStorage        DocumentFileStorage
}

// NewStorages wires the repositories to the shared connection pool and
// the file storage to the configured upload directory.
func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	fileStorage, err := NewDocumentFileStorage(cfg.Files, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		FileStorage:        fileStorage,
	}, nil
}
