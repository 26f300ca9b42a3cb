package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names in the document store.
const (
	CollectionEvents     = "events"
	CollectionCategories = "categories"
)

// Document is a single stored record addressed by an opaque key. Its field-bag
// is kept encoded and only evaluated when DataTo is called.
type Document struct {
	ID   string
	data json.RawMessage
}

// NewDocument returns a Document for key id with the given encoded field-bag.
// A nil data means the document does not exist.
func NewDocument(id string, data []byte) Document {
	return Document{ID: id, data: data}
}

// Exists reports whether the store returned a field-bag for the key.
func (d Document) Exists() bool {
	return d.data != nil
}

// DataTo decodes the field-bag into dest.
func (d Document) DataTo(dest any) error {
	if !d.Exists() {
		return fmt.Errorf("document %q: %w", d.ID, ErrNotFound)
	}
	if err := json.Unmarshal(d.data, dest); err != nil {
		return fmt.Errorf("decode document %q: %w", d.ID, err)
	}
	return nil
}

// DocumentRef points at a document created by the store.
// swagger:model DocumentRef
type DocumentRef struct {
	ID string `json:"id"`
}

// DocumentStore is the hosted backend: named collections of keyed field-bags.
// Errors are returned as produced by the backend.
type DocumentStore interface {
	// List returns every document in the collection in the store's enumeration order.
	List(ctx context.Context, collection string) ([]Document, error)
	// Get returns the document; a missing document is returned with Exists() == false.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Add stores fields under a newly assigned key.
	Add(ctx context.Context, collection string, fields any) (DocumentRef, error)
	// Set stores fields under the given key, replacing any previous field-bag.
	Set(ctx context.Context, collection, id string, fields any) error
	// Update merges patch into the stored field-bag. Returns ErrNotFound if the document does not exist.
	Update(ctx context.Context, collection, id string, patch map[string]any) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
}
