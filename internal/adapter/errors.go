package adapter

import "errors"

// Sentinel errors produced by mapHTTPError from non-2xx API responses.
// The original status text is attached via %w wrapping so callers can both
// match with errors.Is and surface the server's message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
