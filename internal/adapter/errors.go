package adapter

import "errors"

var (
	ErrBlobExists          = errors.New("object already exists")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("object store unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("object not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("object store internal error")
	ErrUnknownProvider     = errors.New("unknown blob provider")
)
