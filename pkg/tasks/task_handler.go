package tasks

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type TaskDTO struct {
	UID     string `json:"uid,omitempty"`
	Title   string `json:"title"`
	Notes   string `json:"notes,omitempty"`
	DueDate string `json:"dueDate,omitempty"`
	Done    bool   `json:"done"`
}

type TaskHandler struct {
	taskService TaskService
}

func NewTaskHandler(taskService TaskService) *TaskHandler {
	return &TaskHandler{taskService}
}

func (handler *TaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	includeDone := r.URL.Query().Has("includeDone")

	tasks, err := handler.taskService.GetAll(r.Context(), includeDone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tasksDTO := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		tasksDTO = append(tasksDTO, taskToDTO(task))
	}
	if err := json.NewEncoder(w).Encode(tasksDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var taskDTO TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&taskDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	task, err := dtoToTask(taskDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdTask, err := handler.taskService.Create(r.Context(), task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(taskToDTO(createdTask)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	taskUid := mux.Vars(r)["taskUid"]

	var taskDTO TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&taskDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if taskDTO.UID == "" || taskDTO.UID != taskUid {
		http.Error(w, "Invalid task uid in request body", http.StatusBadRequest)
		return
	}
	task, err := dtoToTask(taskDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.taskService.Update(r.Context(), task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(taskDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *TaskHandler) SetDone(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	taskUid := mux.Vars(r)["taskUid"]

	var doneDTO struct {
		Done bool `json:"done"`
	}
	if err := json.NewDecoder(r.Body).Decode(&doneDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.taskService.SetDone(r.Context(), taskUid, doneDTO.Done)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (handler *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	taskUid := mux.Vars(r)["taskUid"]

	ok, err := handler.taskService.Delete(r.Context(), taskUid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func taskToDTO(task Task) TaskDTO {
	dto := TaskDTO{
		UID:   task.UID,
		Title: task.Title,
		Notes: task.Notes,
		Done:  task.Done,
	}
	if !task.DueDate.IsZero() {
		dto.DueDate = task.DueDate.Format("2006-01-02")
	}
	return dto
}

func dtoToTask(taskDTO TaskDTO) (Task, error) {
	task := Task{
		UID:   taskDTO.UID,
		Title: taskDTO.Title,
		Notes: taskDTO.Notes,
		Done:  taskDTO.Done,
	}
	if taskDTO.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", taskDTO.DueDate)
		if err != nil {
			return Task{}, err
		}
		task.DueDate = dueDate
	}
	return task, nil
}
