package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure of a run wraps one of these three roots.
var (
	// ErrPrecondition indicates an operation was invoked on inputs that are not ready for it.
	ErrPrecondition = errors.New("precondition violation")

	// ErrConfigMismatch indicates an unsupported pairing of configured options.
	ErrConfigMismatch = errors.New("configuration mismatch")

	// ErrLookupMiss indicates a key with no recorded entry.
	ErrLookupMiss = errors.New("lookup miss")
)

var (
	// ErrNotExtracted is returned when terms are read before extraction ran.
	ErrNotExtracted = fmt.Errorf("%w: terms not extracted", ErrPrecondition)

	// ErrAlreadyExtracted is returned when extraction runs twice on a document.
	ErrAlreadyExtracted = fmt.Errorf("%w: terms already extracted", ErrPrecondition)

	// ErrMissingReference is returned when a strategy needs a reference index and none was given.
	ErrMissingReference = fmt.Errorf("%w: reference index required", ErrPrecondition)

	// ErrUnsupportedMethod is returned for a scoring method name or value outside the known set.
	ErrUnsupportedMethod = fmt.Errorf("%w: unsupported scoring method", ErrConfigMismatch)

	// ErrDocumentNotFound is returned when an index or corpus has no document with the given id.
	ErrDocumentNotFound = fmt.Errorf("%w: document not found", ErrLookupMiss)

	// ErrDuplicateDocument is returned when a document id is added to a corpus twice.
	ErrDuplicateDocument = fmt.Errorf("%w: duplicate document id", ErrPrecondition)

	// ErrSurfaceNotFound is returned when a term has no recorded surface form.
	ErrSurfaceNotFound = fmt.Errorf("%w: no surface form recorded", ErrLookupMiss)
)
