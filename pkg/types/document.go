package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentsTable is the table name used by Document records.
const DocumentsTable = "documents"

// Document is a generic string-keyed record, used by the larder CLI and as
// the reference Entity implementation. An empty ID means no primary key has
// been assigned yet.
type Document struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the documents table name.
func (Document) TableName() string { return DocumentsTable }

// PrimaryKeyName returns the primary-key field name.
func (Document) PrimaryKeyName() string { return "id" }

// PrimaryKey returns the document ID; an empty ID counts as unassigned.
func (d Document) PrimaryKey() (string, bool) {
	return d.ID, d.ID != ""
}

// Serialize encodes the document as a single JSON object.
func (d Document) Serialize() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(b), nil
}

// DecodeDocument is the DecodeFunc counterpart of Document.Serialize.
func DecodeDocument(s string) (Document, error) {
	var d Document
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal document: %w", err)
	}
	return d, nil
}
