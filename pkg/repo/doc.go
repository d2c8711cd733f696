// Package repo implements the generic flat-record repository engine.
//
// A Repository[E, ID] persists one entity type as individual blobs in a
// types.Store, plus one index blob per table holding the newline-delimited
// list of every identifier saved so far. Record keys are derived by hashing
// "table_pkName_id" and the index key by hashing "table_IDs", using a
// 32-bit FNV-1a hash rendered as decimal digits (at most 10 characters, so
// keys stay within the length budget of constrained key/value backends).
//
// # Hash collisions
//
// The key hash is stable across runs but not collision resistant, and
// collisions are neither detected nor resolved: two distinct (table,
// key-material) combinations that hash alike silently share one blob,
// overwriting or merging each other's data. Deployments storing large
// numbers of tables or identifiers should weigh this 32-bit birthday bound
// before relying on the engine.
//
// # Concurrency
//
// Operations are synchronous and take no locks. Concurrent Save calls on
// distinct new IDs are safe (the index grows by additive Append), but
// DeleteByID rewrites the whole index and can clobber a concurrent rewrite,
// losing a deletion or resurrecting a deleted ID. Callers with concurrent
// mutators must serialize all mutating calls per table externally; package
// lock provides a per-table advisory mutex for in-process callers.
//
// # Failure reporting
//
// The Store contract reports failure only through its bool returns and the
// empty-string Read sentinel. The engine does not inspect the bool returns,
// so a failed backend write (for example a record written but the index
// append refused) surfaces as silent drift rather than an error; FindAll
// tolerates such drift by skipping unreadable records, and ExistsByID
// consults the record blob rather than the index so it stays authoritative.
package repo
