package models

// AuthRequest is the JSON body accepted by both signup and login.
// Name is optional and only meaningful for signup.
type AuthRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login on success. Name is
// populated by login only.
type AuthResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// OKResponse is the generic success envelope for mutating operations
// that have nothing else to report (upload, delete).
type OKResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse reports process liveness and a live database probe.
// The HTTP status is always 200; a degraded database shows up here,
// not as an error status.
type HealthResponse struct {
	OK          bool   `json:"ok"`
	DBConnected bool   `json:"db_connected"`
	Error       string `json:"error,omitempty"`
}

// ErrorResponse is the JSON error envelope returned on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
