package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set carried by every session token.
// It extends the registered claims with the user's email so that
// handlers can identify the caller without a database lookup.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the authenticated user's email address.
	Email string `json:"email"`
}

// Token wraps an issued or parsed session token.
//
// SignedString holds the compact serialized form
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID is the parsed "sub" claim cached as int64 to avoid repeated
// string conversion on the hot path.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the email claim extracted from the token payload.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
