package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"happenly/internal/domain"
)

type eventService struct {
	eventRepo    domain.EventRepository
	categoryRepo domain.CategoryRepository
}

// NewEventService returns the document access API. Preconditions are checked
// before any repository call; repository errors are returned unchanged.
func NewEventService(eventRepo domain.EventRepository, categoryRepo domain.CategoryRepository) domain.EventService {
	return &eventService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id string) (domain.EventLookup, error) {
	if err := requireID(id); err != nil {
		return domain.EventLookup{}, err
	}
	return s.eventRepo.Get(ctx, id)
}

func (s *eventService) CreateEvent(ctx context.Context, fields domain.EventFields) (domain.DocumentRef, error) {
	fields = fields.Trimmed()

	var missing []string
	if fields.Title == "" {
		missing = append(missing, "title")
	}
	if fields.Location == "" {
		missing = append(missing, "location")
	}
	if fields.Date == "" {
		missing = append(missing, "date")
	}
	if fields.CategoryID == "" {
		missing = append(missing, "categoryId")
	}
	if len(missing) > 0 {
		return domain.DocumentRef{}, fmt.Errorf("%w: %s required", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if err := validateDate(fields.Date); err != nil {
		return domain.DocumentRef{}, err
	}

	return s.eventRepo.Create(ctx, fields)
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) error {
	if err := requireID(id); err != nil {
		return err
	}
	patch = patch.Trimmed()

	var blanked []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", patch.Title},
		{"location", patch.Location},
		{"date", patch.Date},
		{"categoryId", patch.CategoryID},
	} {
		if f.value != nil && *f.value == "" {
			blanked = append(blanked, f.name)
		}
	}
	if len(blanked) > 0 {
		return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, strings.Join(blanked, ", "))
	}
	if patch.Date != nil {
		if err := validateDate(*patch.Date); err != nil {
			return err
		}
	}

	return s.eventRepo.Update(ctx, id, patch)
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrIDRequired
	}
	return nil
}

// validateDate accepts only real calendar dates in YYYY-MM-DD form.
func validateDate(date string) error {
	if _, err := time.Parse(domain.EventDateLayout, date); err != nil {
		return fmt.Errorf("%w, got %q", domain.ErrInvalidDate, date)
	}
	return nil
}
