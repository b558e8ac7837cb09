package google

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/homeplanner/homeplanner/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type calendarDTO struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

type taskListDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListCalendars returns the calendars visible to the authenticated Google
// account, for the settings screen calendar picker.
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	calendars, err := h.service.ListCalendars(r.Context())
	if errors.Is(err, ErrUnauthenticated) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Google account is not connected"})
		return
	}
	if err != nil {
		log.Error("failed to list Google calendars: ", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Failed to list calendars"})
		return
	}

	dtos := make([]calendarDTO, 0, len(calendars))
	for _, c := range calendars {
		dtos = append(dtos, calendarDTO{ID: c.ID, Summary: c.Summary})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ListTaskLists returns the task lists visible to the authenticated Google
// account, for the settings screen task list picker.
func (h *Handler) ListTaskLists(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	taskLists, err := h.service.ListTaskLists(r.Context())
	if errors.Is(err, ErrUnauthenticated) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Google account is not connected"})
		return
	}
	if err != nil {
		log.Error("failed to list Google task lists: ", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Failed to list task lists"})
		return
	}

	dtos := make([]taskListDTO, 0, len(taskLists))
	for _, l := range taskLists {
		dtos = append(dtos, taskListDTO{ID: l.ID, Title: l.Title})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
