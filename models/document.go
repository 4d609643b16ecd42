package models

import "time"

// Document is a reference to an uploaded file plus its descriptive
// metadata. The file bytes themselves live on disk under the configured
// upload directory; FilePath is always relative to that directory.
type Document struct {
	// DocumentID is the internal unique identifier of the document.
	DocumentID int64 `json:"id"`

	// UserID references the owning user. It becomes nil when the owner
	// record is removed; ownership is soft, not cascading.
	UserID *int64 `json:"user_id"`

	// Name is the display name of the document. Defaults to the original
	// filename when the uploader supplies none.
	Name string `json:"document_name"`

	// Type is an optional free-form document category (e.g. "invoice").
	Type *string `json:"document_type"`

	// Date is an optional user-supplied document date.
	Date *string `json:"document_date"`

	// FilePath is the blob location relative to the upload directory.
	// Never absolute.
	FilePath string `json:"file_path"`

	// OriginalFilename is the client-side name of the uploaded file.
	OriginalFilename string `json:"original_filename"`

	// CreatedAt is the timestamp when the document row was inserted.
	CreatedAt time.Time `json:"created_at"`

	// UploadedBy is the owner's email, populated only by search results
	// via a join against the users table. Nil when the owner is gone.
	UploadedBy *string `json:"uploaded_by,omitempty"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// SearchFilter carries the optional public-search criteria. Zero-value
// fields are omitted from the generated SQL entirely rather than being
// turned into match-all wildcards.
type SearchFilter struct {
	// Query is matched case-insensitively as a substring against both
	// the document name and the original filename.
	Query string

	// Type is matched by exact equality against the document type.
	Type string

	// Date is matched by exact equality against the document date.
	Date string
}
