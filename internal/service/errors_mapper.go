package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/golang-jwt/jwt/v5"
)

// mapStoreError converts repository errors into service errors. The original
// error stays in the chain so its backend message reaches the caller.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrObjectiveNotFound):
		return fmt.Errorf("%w: %w", ErrObjectiveNotFound, err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, store.ErrInvalidReference):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case errors.Is(err, store.ErrInvalidData):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrNothingToUpdate, err)
	}

	return err
}

// mapBlobError converts object store errors into service errors.
func mapBlobError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBlobExists), errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// mapValidationError marks every validator failure as invalid input.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrInvalidField) ||
		errors.Is(err, validators.ErrInvalidDate) ||
		errors.Is(err, validators.ErrEmptyIDs) ||
		errors.Is(err, validators.ErrDuplicateIDs) ||
		errors.Is(err, validators.ErrUnsupportedType) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return err
}

func mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidToken, err)
}
