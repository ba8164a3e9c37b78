package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the bearer token issued by the remote API.
//
// The API issues JWT tokens with the account username in the "sub" (subject)
// claim. The client treats the token as opaque for authentication purposes,
// but parsing the subject locally lets session restore sanity-check that a
// stored token actually belongs to the stored username without a round trip.
type Token struct {
	// SignedString is the compact serialized token exactly as received from
	// the API and sent back on authenticated requests.
	SignedString string `json:"-"`
}

// Username extracts the account username from the token's "sub" claim.
//
// The token is parsed without signature verification: the client does not
// hold the server's signing key and relies on the server to reject forged
// tokens. Returns an error if the token cannot be parsed or the subject
// claim is missing or empty.
func (t Token) Username() (string, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(t.SignedString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("error parsing session token: %w", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("session token has empty subject")
	}

	return subject, nil
}

// String returns the compact serialized form of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
