package tracker

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type EntryDTO struct {
	UID     string `json:"uid,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Details string `json:"details,omitempty"`
}

type EntryHandler struct {
	entryService EntryService
}

func NewEntryHandler(entryService EntryService) *EntryHandler {
	return &EntryHandler{entryService}
}

func (handler *EntryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	kind, err := ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := handler.entryService.GetAll(r.Context(), kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entriesDTO := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		entriesDTO = append(entriesDTO, entryToDTO(entry))
	}
	if err := json.NewEncoder(w).Encode(entriesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	kind, err := ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var entryDTO EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&entryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entry, err := dtoToEntry(entryDTO, kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdEntry, err := handler.entryService.Create(r.Context(), entry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entryToDTO(createdEntry)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	kind, err := ParseKind(vars["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entryUid := vars["entryUid"]

	var entryDTO EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&entryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if entryDTO.UID == "" || entryDTO.UID != entryUid {
		http.Error(w, "Invalid entry uid in request body", http.StatusBadRequest)
		return
	}
	entry, err := dtoToEntry(entryDTO, kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.entryService.Update(r.Context(), entry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Entry not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(entryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	entryUid := mux.Vars(r)["entryUid"]

	ok, err := handler.entryService.Delete(r.Context(), entryUid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Entry not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func entryToDTO(entry Entry) EntryDTO {
	return EntryDTO{
		UID:     entry.UID,
		Kind:    string(entry.Kind),
		Title:   entry.Title,
		Date:    entry.Date.Format("2006-01-02"),
		Details: entry.Details,
	}
}

func dtoToEntry(entryDTO EntryDTO, kind Kind) (Entry, error) {
	date, err := time.Parse("2006-01-02", entryDTO.Date)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		UID:     entryDTO.UID,
		Kind:    kind,
		Title:   entryDTO.Title,
		Date:    date,
		Details: entryDTO.Details,
	}, nil
}
