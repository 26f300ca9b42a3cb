// Package documents maps collections of the document store to domain records.
package documents

import "happenly/internal/domain"

// toEvent evaluates the document's field-bag and merges the document key in as the event id.
func toEvent(doc domain.Document) (*domain.Event, error) {
	var fields domain.EventFields
	if err := doc.DataTo(&fields); err != nil {
		return nil, err
	}
	return &domain.Event{ID: doc.ID, EventFields: fields}, nil
}

func toCategory(doc domain.Document) (*domain.Category, error) {
	c := &domain.Category{}
	if err := doc.DataTo(c); err != nil {
		return nil, err
	}
	c.ID = doc.ID
	return c, nil
}
