package http

import (
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// Handler owns the REST surface of the server. It delegates all domain
// logic to the service layer; the database handle is held only for the
// live connectivity probe of the health endpoint.
type Handler struct {
	services *service.Services

	db        *store.DB
	uploadDir string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set. uploadDir is the blob
// directory served statically under /uploads/.
func NewHandler(services *service.Services, db *store.DB, uploadDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		db:        db,
		uploadDir: uploadDir,
		logger:    logger,
	}
}
