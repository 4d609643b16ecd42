package store

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createDocument = `INSERT INTO documents (user_id, document_name, document_type, document_date, file_path, original_filename)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING document_id, user_id, document_name, document_type, document_date, file_path, original_filename, created_at;`

	findDocumentsByOwner = `SELECT document_id, user_id, document_name, document_type, document_date, file_path, original_filename, created_at
    FROM documents
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	findDocumentByID = `SELECT document_id, user_id, document_name, document_type, document_date, file_path, original_filename, created_at
    FROM documents
    WHERE document_id = $1;`

	deleteDocumentByID = `DELETE FROM documents
    WHERE document_id = $1;`
)

// searchResultLimit caps the number of rows a public search can return
// regardless of how many documents match.
const searchResultLimit = 200
