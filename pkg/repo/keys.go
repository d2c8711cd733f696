package repo

import (
	"hash/fnv"
	"strconv"
)

// hashKey maps arbitrary key material to a storage key: 32-bit FNV-1a
// rendered as decimal digits. Output is 1-10 characters, pure, and stable
// across runs (no randomized seeding), so data written in one process is
// addressable in the next. Not collision resistant; see the package doc.
func hashKey(input string) string {
	h := fnv.New32a()
	h.Write([]byte(input))
	return strconv.FormatUint(uint64(h.Sum32()), 10)
}

// recordKey derives the storage key for one record.
func (r *Repository[E, ID]) recordKey(id ID) string {
	return hashKey(r.table + "_" + r.pkName + "_" + r.codec.EncodeID(id))
}

// indexKeyFor derives the storage key of a table's identifier index.
func indexKeyFor(table string) string {
	return hashKey(table + "_IDs")
}
