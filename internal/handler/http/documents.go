package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadMemory bounds how much of a multipart body is held in memory
// before spilling to temporary files.
const maxUploadMemory = 32 << 20

// upload handles POST /api/upload. The multipart form must carry the
// file under the "file" field; document_name, document_type and
// document_date are optional metadata fields.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, service.ErrNoFileProvided.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("upload request carries no file")
		writeError(w, service.ErrNoFileProvided.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc, err := h.services.DocumentService.Upload(ctx, userID, file, service.DocumentUpload{
		OriginalFilename: header.Filename,
		Name:             r.FormValue("document_name"),
		Type:             r.FormValue("document_type"),
		Date:             r.FormValue("document_date"),
	})
	if err != nil {
		log.Err(err).Msg("document upload failed")
		handleServiceError(w, err)
		return
	}

	log.Debug().Int64("document_id", doc.DocumentID).Str("file_path", doc.FilePath).Msg("document uploaded")

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

// myDocuments handles GET /api/mydocs: every document owned by the
// authenticated requester, newest first, without pagination.
func (h *Handler) myDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	documents, err := h.services.DocumentService.ListByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing documents failed")
		handleServiceError(w, err)
		return
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

// deleteDocument handles DELETE /api/documents/{documentID}. A
// non-numeric id is indistinguishable from a missing row and yields 404.
func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	documentID, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		writeError(w, store.ErrDocumentNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := h.services.DocumentService.Delete(ctx, documentID, userID); err != nil {
		if !errors.Is(err, store.ErrDocumentNotFound) && !errors.Is(err, service.ErrNotDocumentOwner) {
			log.Err(err).Int64("document_id", documentID).Msg("document delete failed")
		}
		handleServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

// search handles GET /api/search, the public unauthenticated document
// search. Absent query parameters are omitted from the generated SQL
// entirely.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.SearchFilter{
		Query: r.URL.Query().Get("q"),
		Type:  r.URL.Query().Get("type"),
		Date:  r.URL.Query().Get("date"),
	}

	documents, err := h.services.DocumentService.Search(ctx, filter)
	if err != nil {
		log.Err(err).Msg("document search failed")
		handleServiceError(w, err)
		return
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}
