package repo

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/idcodec"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// Repository persists entities of type E, keyed by ID, in a types.Store.
// It borrows the store for its lifetime and never closes it. A Repository
// is bound to one table: the one named by E's TableName.
type Repository[E types.Entity[ID], ID comparable] struct {
	store    types.Store
	codec    types.IDCodec[ID]
	decode   types.DecodeFunc[E]
	table    string
	pkName   string
	indexKey string
}

// New creates a repository using the built-in codec for ID. It fails with
// types.ErrUnsupportedIDType when ID is outside the built-in set; use
// NewWithCodec then. Table and primary-key names are read from the zero
// value of E, so E must expose them on its zero value.
func New[E types.Entity[ID], ID comparable](store types.Store, decode types.DecodeFunc[E]) (*Repository[E, ID], error) {
	codec, err := idcodec.For[ID]()
	if err != nil {
		return nil, err
	}
	return NewWithCodec[E, ID](store, codec, decode), nil
}

// NewWithCodec creates a repository with an explicit identifier codec.
func NewWithCodec[E types.Entity[ID], ID comparable](store types.Store, codec types.IDCodec[ID], decode types.DecodeFunc[E]) *Repository[E, ID] {
	var zero E
	table := zero.TableName()
	return &Repository[E, ID]{
		store:    store,
		codec:    codec,
		decode:   decode,
		table:    table,
		pkName:   zero.PrimaryKeyName(),
		indexKey: indexKeyFor(table),
	}
}

// Save writes the entity's record blob, overwriting any existing record
// with the same ID, and appends the ID to the index if it is not already
// present. Returns the entity unchanged. An entity without an assigned
// primary key fails with types.ErrMissingID.
func (r *Repository[E, ID]) Save(entity E) (E, error) {
	id, ok := entity.PrimaryKey()
	if !ok {
		return entity, types.ErrMissingID
	}

	contents, err := entity.Serialize()
	if err != nil {
		return entity, fmt.Errorf("serialize %s record: %w", r.table, err)
	}
	r.store.Create(r.recordKey(id), contents)

	indexed, err := r.indexContains(id)
	if err != nil {
		return entity, err
	}
	if !indexed {
		r.store.Append(r.indexKey, r.codec.EncodeID(id)+"\n")
	}
	return entity, nil
}

// FindByID reads and decodes the record for id. An empty record payload
// means types.ErrNotFound; decode failures propagate unsuppressed.
func (r *Repository[E, ID]) FindByID(id ID) (E, error) {
	var zero E

	contents := r.store.Read(r.recordKey(id))
	if contents == "" {
		return zero, types.ErrNotFound
	}

	entity, err := r.decode(contents)
	if err != nil {
		return zero, fmt.Errorf("decode %s record %s: %w", r.table, r.codec.EncodeID(id), err)
	}
	return entity, nil
}

// FindAll returns every readable entity in index order. Indexed IDs whose
// record blob reads back empty are skipped, tolerating index/record drift
// instead of failing the scan; a record that reads back but does not decode
// still aborts with the decode error. Costs one backend read per indexed ID.
func (r *Repository[E, ID]) FindAll() ([]E, error) {
	ids, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}

	entities := make([]E, 0, len(ids))
	for _, id := range ids {
		contents := r.store.Read(r.recordKey(id))
		if contents == "" {
			continue
		}
		entity, err := r.decode(contents)
		if err != nil {
			return nil, fmt.Errorf("decode %s record %s: %w", r.table, r.codec.EncodeID(id), err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Update overwrites the entity's record blob via the store's Update verb
// and indexes the ID if it is not indexed yet. Unlike Save, the append
// first inspects the current index payload and prefixes a separator when
// the payload does not end in one, so a malformed index missing its
// trailing newline never gets the new ID glued onto its last line.
func (r *Repository[E, ID]) Update(entity E) (E, error) {
	id, ok := entity.PrimaryKey()
	if !ok {
		return entity, types.ErrMissingID
	}

	contents, err := entity.Serialize()
	if err != nil {
		return entity, fmt.Errorf("serialize %s record: %w", r.table, err)
	}
	r.store.Update(r.recordKey(id), contents)

	indexed, err := r.indexContains(id)
	if err != nil {
		return entity, err
	}
	if !indexed {
		entry := r.codec.EncodeID(id) + "\n"
		if current := r.store.Read(r.indexKey); current != "" && !strings.HasSuffix(current, "\n") && !strings.HasSuffix(current, "\r") {
			entry = "\n" + entry
		}
		r.store.Append(r.indexKey, entry)
	}
	return entity, nil
}

// DeleteByID removes the record and its index entry. A non-existent ID is
// a silent no-op. The index is rewritten in full, so cost is linear in the
// number of live identifiers for the table.
func (r *Repository[E, ID]) DeleteByID(id ID) error {
	if !r.ExistsByID(id) {
		return nil
	}

	r.store.Delete(r.recordKey(id))

	ids, err := r.ReadIndex()
	if err != nil {
		return err
	}
	kept := make([]ID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	r.writeIndex(kept)
	return nil
}

// Delete removes the entity's record by its primary key. An entity without
// an assigned primary key fails with types.ErrMissingID.
func (r *Repository[E, ID]) Delete(entity E) error {
	id, ok := entity.PrimaryKey()
	if !ok {
		return types.ErrMissingID
	}
	return r.DeleteByID(id)
}

// ExistsByID reports whether the record blob for id is non-empty. It never
// consults the index, so it stays authoritative when index and records have
// drifted apart; the price is that an intentionally empty record payload
// reads as absent.
func (r *Repository[E, ID]) ExistsByID(id ID) bool {
	return r.store.Read(r.recordKey(id)) != ""
}

// Table returns the table name the repository is bound to.
func (r *Repository[E, ID]) Table() string { return r.table }
