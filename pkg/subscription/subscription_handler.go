package subscription

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type SubscriptionDTO struct {
	UID         string `json:"uid,omitempty"`
	Name        string `json:"name"`
	AmountCents int    `json:"amountCents"`
	Currency    string `json:"currency"`
	BillingDay  int    `json:"billingDay"`
	Active      bool   `json:"active"`
}

type MonthlyTotalDTO struct {
	Currency   string `json:"currency"`
	TotalCents int    `json:"totalCents"`
}

type SubscriptionHandler struct {
	subscriptionService SubscriptionService
}

func NewSubscriptionHandler(subscriptionService SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService}
}

func (handler *SubscriptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	includeInactive := r.URL.Query().Has("includeInactive")

	subscriptions, err := handler.subscriptionService.GetAll(r.Context(), includeInactive)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	subscriptionsDTO := make([]SubscriptionDTO, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		subscriptionsDTO = append(subscriptionsDTO, subscriptionToDTO(subscription))
	}
	if err := json.NewEncoder(w).Encode(subscriptionsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var subscriptionDTO SubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&subscriptionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdSubscription, err := handler.subscriptionService.Create(r.Context(), dtoToSubscription(subscriptionDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(subscriptionToDTO(createdSubscription)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SubscriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	subscriptionUid := mux.Vars(r)["subscriptionUid"]

	var subscriptionDTO SubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&subscriptionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if subscriptionDTO.UID == "" || subscriptionDTO.UID != subscriptionUid {
		http.Error(w, "Invalid subscription uid in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.subscriptionService.Update(r.Context(), dtoToSubscription(subscriptionDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Subscription not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(subscriptionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	subscriptionUid := mux.Vars(r)["subscriptionUid"]

	ok, err := handler.subscriptionService.Delete(r.Context(), subscriptionUid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Subscription not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *SubscriptionHandler) GetMonthlyTotals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	totals, err := handler.subscriptionService.MonthlyTotals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalsDTO := make([]MonthlyTotalDTO, 0, len(totals))
	for _, total := range totals {
		totalsDTO = append(totalsDTO, MonthlyTotalDTO(total))
	}
	if err := json.NewEncoder(w).Encode(totalsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func subscriptionToDTO(subscription Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		UID:         subscription.UID,
		Name:        subscription.Name,
		AmountCents: subscription.AmountCents,
		Currency:    subscription.Currency,
		BillingDay:  subscription.BillingDay,
		Active:      subscription.Active,
	}
}

func dtoToSubscription(subscriptionDTO SubscriptionDTO) Subscription {
	return Subscription{
		UID:         subscriptionDTO.UID,
		Name:        subscriptionDTO.Name,
		AmountCents: subscriptionDTO.AmountCents,
		Currency:    subscriptionDTO.Currency,
		BillingDay:  subscriptionDTO.BillingDay,
		Active:      subscriptionDTO.Active,
	}
}
