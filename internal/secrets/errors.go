package secrets

import "errors"

var (
	// ErrSecretNotFound is returned by Get when nothing is stored.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrEmptySecretKey is returned by NewSQLiteSecrets without a passphrase.
	ErrEmptySecretKey = errors.New("secret key is required to store credentials")
)

// Low-level database errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
)
