package services

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"happenly/internal/domain"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// SeedData is the YAML layout accepted by the seeder.
type SeedData struct {
	Categories []domain.Category    `yaml:"categories"`
	Events     []domain.EventFields `yaml:"events"`
}

// DefaultSeedData returns the bundled demo categories and events.
func DefaultSeedData() (*SeedData, error) {
	return ParseSeedData(bytes.NewReader(defaultSeed))
}

// ParseSeedData decodes a seed file. Unknown keys are rejected.
func ParseSeedData(r io.Reader) (*SeedData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data SeedData
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return &data, nil
		}
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// SeedResult reports what a seed run wrote.
type SeedResult struct {
	Categories int
	EventIDs   []string
}

// Seeder writes seed data through the same paths the API uses.
type Seeder struct {
	events     domain.EventService
	categories domain.CategoryRepository
	logger     *slog.Logger
}

func NewSeeder(logger *slog.Logger, events domain.EventService, categories domain.CategoryRepository) *Seeder {
	return &Seeder{events: events, categories: categories, logger: logger}
}

// Seed writes every category, then every event. It stops at the first
// failure; entries written before it are kept.
func (s *Seeder) Seed(ctx context.Context, data *SeedData) (*SeedResult, error) {
	result := &SeedResult{}
	if data == nil {
		return result, nil
	}

	for i := range data.Categories {
		c := data.Categories[i]
		if c.ID == "" || c.Name == "" {
			return result, fmt.Errorf("category %d: %w: id and name required", i, domain.ErrInvalidInput)
		}
		if err := s.categories.Put(ctx, &c); err != nil {
			return result, fmt.Errorf("category %q: %w", c.ID, err)
		}
		result.Categories++
	}

	for i, fields := range data.Events {
		ref, err := s.events.CreateEvent(ctx, fields)
		if err != nil {
			return result, fmt.Errorf("event %d (%q): %w", i, fields.Title, err)
		}
		s.logger.DebugContext(ctx, "seeded event", "id", ref.ID, "title", fields.Title)
		result.EventIDs = append(result.EventIDs, ref.ID)
	}

	s.logger.InfoContext(ctx, "seed complete", "categories", result.Categories, "events", len(result.EventIDs))
	return result, nil
}
