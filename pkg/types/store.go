package types

// Store is the blob storage contract consumed by the repository engine.
// Keys and payloads are opaque strings.
//
// Failure reporting is deliberately coarse: mutating verbs report success as
// a bool, and Read returns the empty string both when a key is absent and
// when it cannot be read (permissions, missing device, backend closed). An
// empty string is the sole failure signal, so a legitimately empty payload
// is indistinguishable from a missing one. Callers that need to tell those
// apart must not store empty payloads.
type Store interface {
	// Create writes contents under key, overwriting any existing payload.
	Create(key, contents string) bool

	// Read returns the full payload stored under key, or the empty string
	// if the key is absent or unreadable.
	Read(key string) string

	// Update overwrites the payload under key. Backends treat this the
	// same as Create; the separate verb mirrors the repository's intent.
	Update(key, contents string) bool

	// Delete removes the key and reports whether a removal occurred.
	Delete(key string) bool

	// Append appends contents to the payload under key, creating the key
	// if it does not exist.
	Append(key, contents string) bool
}
