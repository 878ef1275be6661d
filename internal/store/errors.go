package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSubjectNotFound is returned when no subject matches the given ID,
	// including IDs that are not valid for the backend.
	ErrSubjectNotFound = errors.New("subject was not found")

	// ErrUserNotFound is returned when no user matches the given ID.
	ErrUserNotFound = errors.New("user was not found")

	// ErrInvalidID is returned when a referenced ID (for example an alumni
	// entry) has a format the backend cannot store.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrStorageUnavailable wraps connectivity failures: lost connections,
	// timeouts, and transient server states.
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrUnsupportedDSN is returned by [NewStorages] for an unknown DSN scheme.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a query fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a write statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
