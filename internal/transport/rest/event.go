package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/media"
	"github.com/heartmarshall/unievent-backend/internal/service/event"
)

// Multipart limits for event submissions.
const (
	MaxPosterBytes   = 10 << 20
	maxMultipartMem  = 8 << 20
	maxSubmitBytes   = event.MaxPosters*MaxPosterBytes + 1<<20
	eventFormField   = "event"
	postersFormField = "posters"
)

type eventService interface {
	ListHomepage(ctx context.Context, limit, offset int) ([]domain.Event, error)
	Search(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	ListMine(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, input event.CreateEventInput, files []media.Upload) (*event.CreateEventResult, error)
	UpdateEventDetails(ctx context.Context, input event.UpdateDetailsInput) (*domain.Event, error)
	UpdateEventDescription(ctx context.Context, input event.UpdateDescriptionInput) error
	DeleteEvent(ctx context.Context, eventID string) error
}

type recommender interface {
	Recommend(ctx context.Context, currentEventID string, userCategories []string) ([]domain.EventSummary, error)
}

// urlResolver turns stored poster keys into public URLs.
type urlResolver interface {
	PublicURL(key string) string
}

// EventHandler serves event REST endpoints.
type EventHandler struct {
	events    eventService
	recommend recommender
	urls      urlResolver
	log       *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events eventService, recommend recommender, urls urlResolver, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		events:    events,
		recommend: recommend,
		urls:      urls,
		log:       logger.With("handler", "event"),
	}
}

type contactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type eventResponse struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Campus              string            `json:"campus"`
	Date                time.Time         `json:"date"`
	RegistrationEndDate time.Time         `json:"registrationEndDate"`
	Location            string            `json:"location"`
	Organizer           string            `json:"organizer"`
	Fee                 string            `json:"fee"`
	HasStarpoints       bool              `json:"hasStarpoints"`
	IsRecruiting        bool              `json:"isRecruiting"`
	Categories          []string          `json:"categories"`
	PosterURLs          []string          `json:"posterUrls"`
	RegistrationLink    *string           `json:"registrationLink,omitempty"`
	Contacts            []contactResponse `json:"contacts,omitempty"`
	AuthorID            string            `json:"authorId"`
	IsActive            bool              `json:"isActive"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

type summaryResponse struct {
	ID        string `json:"id"`
	PosterURL string `json:"posterUrl"`
}

type createResponse struct {
	Event       eventResponse `json:"event"`
	UnderReview bool          `json:"underReview"`
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.events.ListHomepage(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, h.toEvents(events))
}

// Search handles GET /api/events/search.
func (h *EventHandler) Search(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.events.Search(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, h.toEvents(events))
}

// Get handles GET /api/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.events.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, h.toEvent(e))
}

// Mine handles GET /api/events/mine.
func (h *EventHandler) Mine(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListMine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, h.toEvents(events))
}

// Recommendations handles GET /api/events/{id}/recommendations?categories=a,b.
func (h *EventHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !domain.ValidEventID(id) {
		handleError(h.log, w, r, domain.ErrNotFound)
		return
	}
	cats := splitList(r.URL.Query().Get("categories"))

	summaries, err := h.recommend.Recommend(r.Context(), id, cats)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]summaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryResponse{ID: s.ID, PosterURL: h.urls.PublicURL(s.PosterKey)})
	}
	writeData(w, http.StatusOK, out)
}

// Create handles POST /api/events. The body is multipart: an "event" field
// holding the JSON submission and one to three "posters" files.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBytes)
	if err := r.ParseMultipartForm(maxMultipartMem); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "submission is too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("body", "expected multipart/form-data"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	var input event.CreateEventInput
	if err := json.Unmarshal([]byte(r.FormValue(eventFormField)), &input); err != nil {
		handleError(h.log, w, r, domain.NewValidationError(eventFormField, "invalid JSON"))
		return
	}

	files, err := readPosters(r.MultipartForm.File[postersFormField])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.events.CreateEvent(r.Context(), input, files)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, createResponse{Event: h.toEvent(res.Event), UnderReview: res.UnderReview})
}

// UpdateDetails handles PATCH /api/events/{id}.
func (h *EventHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var input event.UpdateDetailsInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.EventID = chi.URLParam(r, "id")

	e, err := h.events.UpdateEventDetails(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, h.toEvent(e))
}

// UpdateDescription handles PATCH /api/events/{id}/description.
func (h *EventHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	var input event.UpdateDescriptionInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.EventID = chi.URLParam(r, "id")

	if err := h.events.UpdateEventDescription(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, "description updated")
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.events.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, "event deleted")
}

func (h *EventHandler) toEvent(e *domain.Event) eventResponse {
	urls := make([]string, 0, len(e.PosterKeys))
	for _, k := range e.PosterKeys {
		urls = append(urls, h.urls.PublicURL(k))
	}
	contacts := make([]contactResponse, 0, len(e.Contacts))
	for _, c := range e.Contacts {
		contacts = append(contacts, contactResponse(c))
	}
	return eventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Campus:              e.Campus.String(),
		Date:                e.Date,
		RegistrationEndDate: e.RegistrationEndDate,
		Location:            e.Location,
		Organizer:           e.Organizer,
		Fee:                 e.Fee,
		HasStarpoints:       e.HasStarpoints,
		IsRecruiting:        e.IsRecruiting,
		Categories:          e.Categories,
		PosterURLs:          urls,
		RegistrationLink:    e.RegistrationLink,
		Contacts:            contacts,
		AuthorID:            e.AuthorID,
		IsActive:            e.IsActive,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func (h *EventHandler) toEvents(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, h.toEvent(&events[i]))
	}
	return out
}

func readPosters(headers []*multipart.FileHeader) ([]media.Upload, error) {
	files := make([]media.Upload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > MaxPosterBytes {
			return nil, domain.NewValidationError(postersFormField, fmt.Sprintf("%s exceeds %d MB", fh.Filename, MaxPosterBytes>>20))
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open poster: %w", err)
		}
		data, err := io.ReadAll(io.LimitReader(f, MaxPosterBytes+1))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read poster: %w", err)
		}
		files = append(files, media.Upload{Filename: fh.Filename, Data: data})
	}
	return files, nil
}

func pageParams(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	if limit, err = intParam(q.Get("limit"), "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = intParam(q.Get("offset"), "offset"); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func parseFilter(r *http.Request) (domain.EventFilter, error) {
	q := r.URL.Query()
	f := domain.EventFilter{
		Query:      q.Get("q"),
		Categories: splitList(q.Get("categories")),
	}

	if c := strings.TrimSpace(q.Get("campus")); c != "" {
		campus := domain.Campus(c)
		f.Campus = &campus
	}

	var err error
	if f.HasFee, err = boolParam(q.Get("hasFee"), "hasFee"); err != nil {
		return f, err
	}
	if f.HasStarpoints, err = boolParam(q.Get("hasStarpoints"), "hasStarpoints"); err != nil {
		return f, err
	}
	if f.IsRecruiting, err = boolParam(q.Get("isRecruiting"), "isRecruiting"); err != nil {
		return f, err
	}
	if f.Limit, f.Offset, err = pageParams(r); err != nil {
		return f, err
	}
	return f, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return v, nil
}

func boolParam(raw, name string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
