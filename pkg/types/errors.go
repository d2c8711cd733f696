package types

import "errors"

// Repository operation errors.
var (
	// ErrNotFound reports that no record exists for the requested ID.
	ErrNotFound = errors.New("entity not found")

	// ErrMissingID reports a Save, Update, or Delete on an entity whose
	// primary key has not been assigned. Callers must assign an
	// identifier before persisting.
	ErrMissingID = errors.New("entity has no primary key assigned")

	// ErrConversion reports that a string could not be parsed into the
	// identifier type. Wrapped errors carry the offending value.
	ErrConversion = errors.New("identifier conversion failed")

	// ErrUnsupportedIDType reports that no built-in codec exists for the
	// identifier type; supply an IDCodec explicitly.
	ErrUnsupportedIDType = errors.New("unsupported identifier type")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDataDirEmpty   = errors.New("data directory must not be empty")
)
