package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// The store never retries by itself; the classification is logged next to the
// failure so lock contention can be told apart from broken data.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable means the same transaction may succeed on a later run, e.g.
	// after a lost connection, a deadlock rollback or a busy database file.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non_retryable"
}
