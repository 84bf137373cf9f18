package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Backend errors are wrapped so the Postgres message stays in the error text.
var (
	// ErrNotFound is returned when a row expected to exist is absent.
	ErrNotFound = errors.New("record not found")

	// ErrObjectiveNotFound is returned when toggling an objective id that is
	// not part of the weekly entry. It wraps [ErrNotFound].
	ErrObjectiveNotFound = fmt.Errorf("objective %w", ErrNotFound)

	// ErrConflict is returned on unique constraint violations.
	ErrConflict = errors.New("record already exists")

	// ErrInvalidReference is returned on foreign key violations.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidData is returned on check, not-null and data exceptions.
	ErrInvalidData = errors.New("invalid data")

	// ErrNothingToUpdate is returned when a partial update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
