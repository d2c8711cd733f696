// Package types defines the Store and Entity contracts, identifier codec
// capability, configuration, and standard errors for the Larder persistence
// system.
//
// A Store is a flat key/value blob store with five verbs (Create, Read,
// Update, Delete, Append). A repository maps typed entities onto Store keys;
// see package repo for the mapping. Backends implementing Store live under
// internal/ and are selected through the pkg/store factory.
package types
