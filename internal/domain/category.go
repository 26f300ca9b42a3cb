package domain

import "context"

// Category groups events. Categories are read-only through the API.
// swagger:model Category
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CategoryRepository maps the categories collection to Category records.
type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	// Put writes a category under its own id. Only used by the seeder.
	Put(ctx context.Context, c *Category) error
}
