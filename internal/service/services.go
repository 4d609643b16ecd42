package service

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// Services bundles every domain service the transport layer depends on.
type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
}

// NewServices wires the domain services to their storage backends.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, storages.FileStorage, logger),
	}
}
