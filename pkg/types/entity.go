package types

// Entity is implemented by every record type stored through a repository.
// TableName and PrimaryKeyName are stable, process-wide constants per type
// and must be callable on the zero value: the repository reads them from a
// zero E before any instance exists, so entity types should be value types
// (or nil-safe pointer receivers).
type Entity[ID comparable] interface {
	// TableName returns the logical table this entity belongs to.
	TableName() string

	// PrimaryKeyName returns the name of the primary-key field.
	PrimaryKeyName() string

	// PrimaryKey returns the entity's identifier and whether one has been
	// assigned.
	PrimaryKey() (ID, bool)

	// Serialize returns a full-state string encoding of the entity that
	// the matching DecodeFunc can round-trip.
	Serialize() (string, error)
}

// DecodeFunc reconstructs an entity from its serialized form. It is the
// type-level counterpart of Entity.Serialize, supplied to repo.New.
type DecodeFunc[E any] func(s string) (E, error)

// IDCodec converts identifiers to and from their canonical string form.
// EncodeID must be lossless for the identifier type, and DecodeID must be
// its exact inverse; DecodeID returns an error wrapping ErrConversion for
// input that is not a valid literal, never a silent zero value.
//
// Built-in codecs for string, integer, and float identifiers live in
// package idcodec; any other identifier type needs a caller-supplied codec.
type IDCodec[ID any] interface {
	EncodeID(id ID) string
	DecodeID(s string) (ID, error)
}
