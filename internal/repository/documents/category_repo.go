package documents

import (
	"context"

	"happenly/internal/domain"
)

type categoryRepository struct {
	store domain.DocumentStore
}

// NewCategoryRepository returns a domain.CategoryRepository over the categories collection.
func NewCategoryRepository(store domain.DocumentStore) domain.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	docs, err := r.store.List(ctx, domain.CollectionCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(docs))
	for _, doc := range docs {
		c, err := toCategory(doc)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *categoryRepository) Put(ctx context.Context, c *domain.Category) error {
	return r.store.Set(ctx, domain.CollectionCategories, c.ID, map[string]string{"name": c.Name})
}
