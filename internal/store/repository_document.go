package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It manages rows of the "documents" table; the
// file bytes those rows reference live in [DocumentFileStorage] and are
// never touched here.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDocument persists a new document row and returns it with
// server-assigned fields (DocumentID, CreatedAt) populated via the
// RETURNING clause of the [createDocument] query.
//
// Referential existence of the owner is not verified beyond the foreign
// key constraint.
func (r *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDocument,
		doc.UserID, doc.Name, doc.Type, doc.Date, doc.FilePath, doc.OriginalFilename)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&doc.DocumentID, &doc.UserID, &doc.Name, &doc.Type, &doc.Date,
		&doc.FilePath, &doc.OriginalFilename, &doc.CreatedAt); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// FindDocumentsByOwner returns every document owned by userID, newest
// first. No pagination is applied.
func (r *documentRepository) FindDocumentsByOwner(ctx context.Context, userID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findDocumentsByOwner, userID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocumentsByOwner").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanDocuments(rows, false)
}

// FindDocumentByID retrieves a single document row by its id.
//
// Error handling:
//   - No matching row → [ErrDocumentNotFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *documentRepository) FindDocumentByID(ctx context.Context, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var doc models.Document
	row := r.db.QueryRowContext(ctx, findDocumentByID, documentID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocumentByID").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&doc.DocumentID, &doc.UserID, &doc.Name, &doc.Type, &doc.Date,
		&doc.FilePath, &doc.OriginalFilename, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.FindDocumentByID").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// DeleteDocumentByID removes a document row. Returns
// [ErrDocumentNotFound] when no row with that id exists, so callers can
// distinguish "already gone" from a successful delete.
func (r *documentRepository) DeleteDocumentByID(ctx context.Context, documentID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDocumentByID, documentID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteDocumentByID").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// SearchDocuments runs the public document search. The WHERE clause is
// assembled dynamically with squirrel: absent filters are omitted from
// the statement entirely instead of being rewritten as match-all
// wildcards. Results are joined with the uploader's email (NULL when the
// owner record was removed), ordered newest first, and capped at
// [searchResultLimit] rows.
func (r *documentRepository) SearchDocuments(ctx context.Context, filter models.SearchFilter) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"d.document_id", "d.user_id", "d.document_name", "d.document_type", "d.document_date",
		"d.file_path", "d.original_filename", "d.created_at", "u.email AS uploaded_by").
		From("documents d").
		LeftJoin("users u ON u.user_id = d.user_id").
		OrderBy("d.created_at DESC").
		Limit(searchResultLimit).
		PlaceholderFormat(sq.Dollar)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"d.document_name": pattern},
			sq.ILike{"d.original_filename": pattern},
		})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"d.document_type": filter.Type})
	}
	if filter.Date != "" {
		builder = builder.Where(sq.Eq{"d.document_date": filter.Date})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.SearchDocuments").Msg("error building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.SearchDocuments").Msg("error executing search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanDocuments(rows, true)
}

// scanDocuments drains rows into a slice of documents. When withUploader
// is true an extra trailing uploaded_by column is expected.
func scanDocuments(rows *sql.Rows, withUploader bool) ([]models.Document, error) {
	documents := make([]models.Document, 0)

	for rows.Next() {
		var doc models.Document

		dest := []any{&doc.DocumentID, &doc.UserID, &doc.Name, &doc.Type, &doc.Date,
			&doc.FilePath, &doc.OriginalFilename, &doc.CreatedAt}
		if withUploader {
			dest = append(dest, &doc.UploadedBy)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}
