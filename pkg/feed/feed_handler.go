package feed

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type FeedDTO struct {
	UID  string `json:"uid,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type FeedHandler struct {
	feedService FeedService
}

func NewFeedHandler(feedService FeedService) *FeedHandler {
	return &FeedHandler{feedService}
}

func (handler *FeedHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	feeds, err := handler.feedService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	feedsDTO := make([]FeedDTO, 0, len(feeds))
	for _, feed := range feeds {
		feedsDTO = append(feedsDTO, feedToDTO(feed))
	}
	if err := json.NewEncoder(w).Encode(feedsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FeedHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new feed")
	w.Header().Set("Content-Type", "application/json")

	var feedDTO FeedDTO
	if err := json.NewDecoder(r.Body).Decode(&feedDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdFeed, err := handler.feedService.Create(r.Context(), dtoToFeed(feedDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(feedToDTO(createdFeed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FeedHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	feedUid := mux.Vars(r)["feedUid"]

	var feedDTO FeedDTO
	if err := json.NewDecoder(r.Body).Decode(&feedDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if feedDTO.UID == "" || feedDTO.UID != feedUid {
		http.Error(w, "Invalid feed uid in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.feedService.Update(r.Context(), dtoToFeed(feedDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Feed not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(feedDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FeedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	feedUid := mux.Vars(r)["feedUid"]

	ok, err := handler.feedService.Delete(r.Context(), feedUid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Feed not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func feedToDTO(feed Feed) FeedDTO {
	return FeedDTO{UID: feed.UID, Name: feed.Name, URL: feed.URL}
}

func dtoToFeed(feedDTO FeedDTO) Feed {
	return Feed{UID: feedDTO.UID, Name: feedDTO.Name, URL: feedDTO.URL}
}
