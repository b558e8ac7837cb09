package notes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type NoteDTO struct {
	UID       string     `json:"uid,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Pinned    bool       `json:"pinned"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type NoteHandler struct {
	noteService NoteService
}

func NewNoteHandler(noteService NoteService) *NoteHandler {
	return &NoteHandler{noteService}
}

func (handler *NoteHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	notes, err := handler.noteService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	notesDTO := make([]NoteDTO, 0, len(notes))
	for _, note := range notes {
		notesDTO = append(notesDTO, noteToDTO(note))
	}
	if err := json.NewEncoder(w).Encode(notesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var noteDTO NoteDTO
	if err := json.NewDecoder(r.Body).Decode(&noteDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdNote, err := handler.noteService.Create(r.Context(), dtoToNote(noteDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(noteToDTO(createdNote)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	noteUid := mux.Vars(r)["noteUid"]

	var noteDTO NoteDTO
	if err := json.NewDecoder(r.Body).Decode(&noteDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if noteDTO.UID == "" || noteDTO.UID != noteUid {
		http.Error(w, "Invalid note uid in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.noteService.Update(r.Context(), dtoToNote(noteDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(noteDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	noteUid := mux.Vars(r)["noteUid"]

	ok, err := handler.noteService.Delete(r.Context(), noteUid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func noteToDTO(note Note) NoteDTO {
	dto := NoteDTO{
		UID:     note.UID,
		Title:   note.Title,
		Content: note.Content,
		Pinned:  note.Pinned,
	}
	if !note.CreatedAt.IsZero() {
		dto.CreatedAt = &note.CreatedAt
	}
	if !note.UpdatedAt.IsZero() {
		dto.UpdatedAt = &note.UpdatedAt
	}
	return dto
}

func dtoToNote(noteDTO NoteDTO) Note {
	return Note{
		UID:     noteDTO.UID,
		Title:   noteDTO.Title,
		Content: noteDTO.Content,
		Pinned:  noteDTO.Pinned,
	}
}
