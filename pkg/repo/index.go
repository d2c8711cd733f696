package repo

import (
	"fmt"
	"strings"
)

// isLineSeparator reports whether c separates index entries. Both \n and \r
// qualify, so CRLF-edited index files parse the same as LF ones.
func isLineSeparator(c rune) bool {
	return c == '\n' || c == '\r'
}

// ReadIndex returns the table's identifier index in insertion order. A
// missing index blob is indistinguishable from an empty one and yields an
// empty slice. Runs of line separators collapse, empty entries are never
// emitted, and a final field without a trailing separator is included. A
// field that does not parse as an ID aborts the read with an error wrapping
// types.ErrConversion; there is no partial recovery.
func (r *Repository[E, ID]) ReadIndex() ([]ID, error) {
	payload := r.store.Read(r.indexKey)
	if payload == "" {
		return nil, nil
	}

	fields := strings.FieldsFunc(payload, isLineSeparator)
	ids := make([]ID, 0, len(fields))
	for _, field := range fields {
		id, err := r.codec.DecodeID(field)
		if err != nil {
			return nil, fmt.Errorf("index for table %q: %w", r.table, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// writeIndex overwrites the table's index blob with one ID per line,
// always terminating the payload with a trailing separator. The overwrite
// is a single Create call, so a concurrent reader of the index key never
// observes a half-written payload.
func (r *Repository[E, ID]) writeIndex(ids []ID) {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(r.codec.EncodeID(id))
		b.WriteByte('\n')
	}
	r.store.Create(r.indexKey, b.String())
}

// indexContains reports whether id is already indexed. Linear scan of the
// full index; cost grows with the number of live identifiers.
func (r *Repository[E, ID]) indexContains(id ID) (bool, error) {
	ids, err := r.ReadIndex()
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}
