package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing
	// required fields (email, password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for BOTH an unknown
	// email and a wrong password. Collapsing the two cases into one
	// error keeps responses constant-shape and resists user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid is the normalised result of any token
	// validation failure (expired, bad signature, malformed, wrong issuer).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNoFileProvided is returned when an upload request carries no file.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrNotDocumentOwner is returned when a delete targets a document
	// the requester does not own.
	ErrNotDocumentOwner = errors.New("document belongs to another user")
)
