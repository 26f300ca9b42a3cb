package documents

import (
	"context"

	"happenly/internal/domain"
)

type eventRepository struct {
	store domain.DocumentStore
}

// NewEventRepository returns a domain.EventRepository over the events collection.
// Store errors are returned unchanged.
func NewEventRepository(store domain.DocumentStore) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	docs, err := r.store.List(ctx, domain.CollectionEvents)
	if err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(docs))
	for _, doc := range docs {
		e, err := toEvent(doc)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *eventRepository) Get(ctx context.Context, id string) (domain.EventLookup, error) {
	doc, err := r.store.Get(ctx, domain.CollectionEvents, id)
	if err != nil {
		return domain.EventLookup{}, err
	}
	if !doc.Exists() {
		return domain.EventNotFound(), nil
	}
	e, err := toEvent(doc)
	if err != nil {
		return domain.EventLookup{}, err
	}
	return domain.EventFound(e), nil
}

func (r *eventRepository) Create(ctx context.Context, fields domain.EventFields) (domain.DocumentRef, error) {
	return r.store.Add(ctx, domain.CollectionEvents, fields)
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) error {
	return r.store.Update(ctx, domain.CollectionEvents, id, patch.Fields())
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, domain.CollectionEvents, id)
}
