package domain

import (
	"context"
	"strings"
)

// EventDateLayout is the canonical layout of Event.Date.
const EventDateLayout = "2006-01-02"

// EventFields is the stored field set of an event. It never carries the
// identifier: ids are assigned by the store and only appear on reads.
// swagger:model EventFields
type EventFields struct {
	Title            string `json:"title" yaml:"title"`
	Description      string `json:"description" yaml:"description"`
	Location         string `json:"location" yaml:"location"`
	Date             string `json:"date" yaml:"date"`
	CategoryID       string `json:"categoryId" yaml:"categoryId"`
	ImageURL         string `json:"imageUrl" yaml:"imageUrl"`
	ImageDescription string `json:"imageDescription" yaml:"imageDescription"`
}

// Trimmed returns a copy with leading and trailing whitespace removed from every field.
func (f EventFields) Trimmed() EventFields {
	return EventFields{
		Title:            strings.TrimSpace(f.Title),
		Description:      strings.TrimSpace(f.Description),
		Location:         strings.TrimSpace(f.Location),
		Date:             strings.TrimSpace(f.Date),
		CategoryID:       strings.TrimSpace(f.CategoryID),
		ImageURL:         strings.TrimSpace(f.ImageURL),
		ImageDescription: strings.TrimSpace(f.ImageDescription),
	}
}

// Event is the read shape of an event: the stored fields plus the document key.
// swagger:model Event
type Event struct {
	ID string `json:"id"`
	EventFields
}

// EventPatch is a partial update. Nil fields are left unchanged on the stored event.
// swagger:model EventPatch
type EventPatch struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	Location         *string `json:"location,omitempty"`
	Date             *string `json:"date,omitempty"`
	CategoryID       *string `json:"categoryId,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	ImageDescription *string `json:"imageDescription,omitempty"`
}

// Trimmed returns a copy with every present value trimmed.
func (p EventPatch) Trimmed() EventPatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	return EventPatch{
		Title:            trim(p.Title),
		Description:      trim(p.Description),
		Location:         trim(p.Location),
		Date:             trim(p.Date),
		CategoryID:       trim(p.CategoryID),
		ImageURL:         trim(p.ImageURL),
		ImageDescription: trim(p.ImageDescription),
	}
}

// Fields returns the present values keyed by their stored field name.
func (p EventPatch) Fields() map[string]any {
	out := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	set("title", p.Title)
	set("description", p.Description)
	set("location", p.Location)
	set("date", p.Date)
	set("categoryId", p.CategoryID)
	set("imageUrl", p.ImageURL)
	set("imageDescription", p.ImageDescription)
	return out
}

// EventLookup is the result of fetching one event: either found with a record or not found.
type EventLookup struct {
	event *Event
}

// EventFound returns a lookup holding e.
func EventFound(e *Event) EventLookup {
	return EventLookup{event: e}
}

// EventNotFound returns a lookup for a missing event.
func EventNotFound() EventLookup {
	return EventLookup{}
}

// Event returns the record and true if the event was found.
func (l EventLookup) Event() (*Event, bool) {
	return l.event, l.event != nil
}

// EventRepository maps the events collection to Event records.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	Get(ctx context.Context, id string) (EventLookup, error)
	Create(ctx context.Context, fields EventFields) (DocumentRef, error)
	Update(ctx context.Context, id string, patch EventPatch) error
	Delete(ctx context.Context, id string) error
}

// EventService is the document access API used by delivery and tooling.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (EventLookup, error)
	CreateEvent(ctx context.Context, fields EventFields) (DocumentRef, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) error
	DeleteEvent(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]*Category, error)
}
