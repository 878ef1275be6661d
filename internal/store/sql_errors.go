package store

// ErrorClassification is the result type returned by [ErrorClassificator].
// It indicates whether a failed database operation is transient.
type ErrorClassification int

const (
	// NonRetryable indicates that the failure is permanent for this request.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient failure (lost connection, deadlock,
	// busy database). Such errors are reported as [ErrStorageUnavailable];
	// nothing in the store retries them.
	Retryable
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
