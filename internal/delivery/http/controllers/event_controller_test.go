package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"happenly/internal/delivery/http/helpers"
	"happenly/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events     []*domain.Event
	categories []*domain.Category
	byID       map[string]*domain.Event
	err        error
	createRef  domain.DocumentRef

	lastID     string
	lastFields domain.EventFields
	lastPatch  domain.EventPatch
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) GetEvent(ctx context.Context, id string) (domain.EventLookup, error) {
	f.lastID = id
	if f.err != nil {
		return domain.EventLookup{}, f.err
	}
	if e, ok := f.byID[id]; ok {
		return domain.EventFound(e), nil
	}
	return domain.EventNotFound(), nil
}

func (f *fakeEventService) CreateEvent(ctx context.Context, fields domain.EventFields) (domain.DocumentRef, error) {
	f.lastFields = fields
	return f.createRef, f.err
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) error {
	f.lastID, f.lastPatch = id, patch
	return f.err
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeEventService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return f.categories, f.err
}

// serve routes req through a mux so path values are populated.
func serve(pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env.Error
}

var eventA = &domain.Event{ID: "e1", EventFields: domain.EventFields{
	Title: "Evening Life Drawing", Location: "Northern Quarter, Manchester", Date: "2025-07-10", CategoryID: "arts",
}}

func TestEventController_ListEvents(t *testing.T) {
	svc := &fakeEventService{events: []*domain.Event{eventA}}
	c := NewEventController(testLogger, svc)

	rr := serve("GET /events", c.ListEvents, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got []*domain.Event
	assert.Nil(t, decodeEnvelope(t, rr, &got))
	assert.Equal(t, []*domain.Event{eventA}, got)
}

func TestEventController_ListEvents_backendError(t *testing.T) {
	svc := &fakeEventService{err: errors.New("permission denied")}
	c := NewEventController(testLogger, svc)

	rr := serve("GET /events", c.ListEvents, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	apiErr := decodeEnvelope(t, rr, nil)
	require.NotNil(t, apiErr)
	assert.Equal(t, helpers.ErrCodeInternalError, apiErr.Code)
	assert.NotContains(t, apiErr.Message, "permission denied")
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeEventService
		path       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "found",
			svc:        &fakeEventService{byID: map[string]*domain.Event{"e1": eventA}},
			path:       "/events/e1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			svc:        &fakeEventService{byID: map[string]*domain.Event{}},
			path:       "/events/e404",
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "blank id",
			svc:        &fakeEventService{err: domain.ErrIDRequired},
			path:       "/events/%20",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger, tt.svc)
			rr := serve("GET /events/{eventID}", c.GetEvent, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			apiErr := decodeEnvelope(t, rr, nil)
			if tt.wantCode == "" {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestEventController_GetEvent_body(t *testing.T) {
	c := NewEventController(testLogger, &fakeEventService{byID: map[string]*domain.Event{"e1": eventA}})
	rr := serve("GET /events/{eventID}", c.GetEvent, httptest.NewRequest(http.MethodGet, "/events/e1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{
		"id":"e1","title":"Evening Life Drawing","description":"","location":"Northern Quarter, Manchester",
		"date":"2025-07-10","categoryId":"arts","imageUrl":"","imageDescription":""
	},"error":null}`, rr.Body.String())
}

func TestEventController_CreateEvent(t *testing.T) {
	svc := &fakeEventService{createRef: domain.DocumentRef{ID: "e3"}}
	c := NewEventController(testLogger, svc)
	body := `{"title":"Test Event C","description":"Desc C","location":"Liverpool","date":"2025-07-01","categoryId":"arts","imageUrl":"https://example.com/image-c.jpg","imageDescription":"Image C"}`

	rr := serve("POST /events", c.CreateEvent, httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"data":{"id":"e3"},"error":null}`, rr.Body.String())
	assert.Equal(t, "Test Event C", svc.lastFields.Title)
	assert.Equal(t, "arts", svc.lastFields.CategoryID)
}

func TestEventController_CreateEvent_errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"unknown field", `{"title":"x","id":"e9"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"invalid input", `{"title":"x"}`, domain.ErrInvalidInput, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"invalid date", `{"title":"x"}`, domain.ErrInvalidDate, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"backend failure", `{"title":"x"}`, errors.New("unavailable"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger, &fakeEventService{err: tt.svcErr})
			rr := serve("POST /events", c.CreateEvent, httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			apiErr := decodeEnvelope(t, rr, nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	svc := &fakeEventService{}
	c := NewEventController(testLogger, svc)
	req := httptest.NewRequest(http.MethodPatch, "/events/e1", strings.NewReader(`{"title":"Updated title"}`))

	rr := serve("PATCH /events/{eventID}", c.UpdateEvent, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "e1", svc.lastID)
	require.NotNil(t, svc.lastPatch.Title)
	assert.Equal(t, "Updated title", *svc.lastPatch.Title)
	assert.Nil(t, svc.lastPatch.Location)
}

func TestEventController_UpdateEvent_notFound(t *testing.T) {
	c := NewEventController(testLogger, &fakeEventService{err: domain.ErrNotFound})
	req := httptest.NewRequest(http.MethodPatch, "/events/e404", strings.NewReader(`{"title":"x"}`))

	rr := serve("PATCH /events/{eventID}", c.UpdateEvent, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &fakeEventService{}
	c := NewEventController(testLogger, svc)

	rr := serve("DELETE /events/{eventID}", c.DeleteEvent, httptest.NewRequest(http.MethodDelete, "/events/e1", nil))

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "e1", svc.lastID)
	assert.Empty(t, rr.Body.String())
}

func TestEventController_ListCategories(t *testing.T) {
	svc := &fakeEventService{categories: []*domain.Category{{ID: "music", Name: "Music"}}}
	c := NewEventController(testLogger, svc)

	rr := serve("GET /categories", c.ListCategories, httptest.NewRequest(http.MethodGet, "/categories", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[{"id":"music","name":"Music"}],"error":null}`, rr.Body.String())
}
