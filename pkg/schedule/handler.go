package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/homeplanner/homeplanner/internal/rest"
)

// Provider is the read interface the HTTP layer consumes; the meal plan
// view composes the same interface.
type Provider interface {
	Schedule(ctx context.Context, from, to Date) (map[Date][]Event, error)
}

type EventDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	AllDay   bool   `json:"allDay"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
	SourceID string `json:"sourceId,omitempty"`
}

type DayDTO struct {
	Date   string     `json:"date"`
	Events []EventDTO `json:"events"`
}

type Handler struct {
	provider Provider
}

func NewHandler(provider Provider) *Handler {
	return &Handler{provider}
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	from, to, ok := ParseWindow(w, r)
	if !ok {
		return
	}

	buckets, err := h.provider.Schedule(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	days := make([]DayDTO, 0, len(buckets))
	for _, day := range Days(buckets) {
		events := buckets[day]
		dtos := make([]EventDTO, 0, len(events))
		for _, event := range events {
			dtos = append(dtos, ToEventDTO(event))
		}
		days = append(days, DayDTO{Date: day.String(), Events: dtos})
	}

	if err := json.NewEncoder(w).Encode(days); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ToEventDTO renders an event for the client: all-day values as plain
// dates, timed values as RFC3339 instants.
func ToEventDTO(event Event) EventDTO {
	dto := EventDTO{
		ID:       event.ID,
		Title:    event.Title,
		AllDay:   event.Start.Kind == KindDate,
		Location: event.Location,
		Notes:    event.Notes,
		SourceID: event.SourceID,
	}
	if dto.AllDay {
		dto.Start = event.Start.Date.String()
		dto.End = event.End.Date.String()
	} else {
		dto.Start = event.Start.Instant.Format(time.RFC3339)
		dto.End = event.End.Instant.Format(time.RFC3339)
	}
	return dto
}

// ParseWindow reads the from/to query parameters shared by the schedule and
// meal plan endpoints.
func ParseWindow(w http.ResponseWriter, r *http.Request) (Date, Date, bool) {
	from, err := ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid from date",
			Details: "'from' must be in YYYY-MM-DD format",
		})
		return Date{}, Date{}, false
	}
	to, err := ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid to date",
			Details: "'to' must be in YYYY-MM-DD format",
		})
		return Date{}, Date{}, false
	}
	return from, to, true
}
