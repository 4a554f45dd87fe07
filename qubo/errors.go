package qubo

import "github.com/go-faster/errors"

// Every message is prefixed with "qubo:". Callers match with errors.Is.
var (
	// ErrInvalidKeyShape is returned when a term does not name exactly two variables.
	ErrInvalidKeyShape = errors.New("qubo: key is not a pair of variables")

	// ErrEmptyProblem is returned when a problem has no terms.
	ErrEmptyProblem = errors.New("qubo: problem has no terms")

	// ErrTooManyVariables is returned when an exhaustive enumeration would exceed MaxLandscapeVariables.
	ErrTooManyVariables = errors.New("qubo: too many variables to enumerate")

	// ErrUnknownLabel is returned when a label is not part of the matrix.
	ErrUnknownLabel = errors.New("qubo: unknown label")

	// ErrInvalidList is returned when a list literal is not bracketed or has an empty element.
	ErrInvalidList = errors.New("qubo: invalid list literal")

	// ErrUnknownItem is returned when an inclusion names an item that is not in the catalog.
	ErrUnknownItem = errors.New("qubo: unknown item")
)
