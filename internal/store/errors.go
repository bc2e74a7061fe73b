package store

import "errors"

// Connection errors returned by [NewConnect]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrOpeningDatabase is returned when the driver rejects the DSN.
	ErrOpeningDatabase = errors.New("error opening database connection")

	// ErrPingingDatabase is returned when the database did not answer a ping
	// within the configured attempts.
	ErrPingingDatabase = errors.New("error connecting database (ping)")

	// ErrEmptyDSN is returned when a connection is requested without a DSN.
	ErrEmptyDSN = errors.New("database DSN is empty")

	// ErrUnsupportedDSN is returned for a DSN whose scheme names no known
	// driver, e.g. mysql:// or a misspelled postgres://.
	ErrUnsupportedDSN = errors.New("unsupported database DSN scheme")
)
