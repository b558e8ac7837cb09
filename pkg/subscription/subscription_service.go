package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/homeplanner/homeplanner/pkg/user"
)

// MonthlyTotal sums active subscriptions per currency.
type MonthlyTotal struct {
	Currency   string
	TotalCents int
}

type SubscriptionService interface {
	GetAll(ctx context.Context, includeInactive bool) ([]Subscription, error)
	Create(ctx context.Context, subscription Subscription) (Subscription, error)
	Update(ctx context.Context, subscription Subscription) (bool, error)
	Delete(ctx context.Context, subscriptionUid string) (bool, error)
	MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error)
}

type SubscriptionServiceImpl struct {
	repo SubscriptionRepo
}

func NewSubscriptionService(repo SubscriptionRepo) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{repo: repo}
}

func (s *SubscriptionServiceImpl) GetAll(ctx context.Context, includeInactive bool) ([]Subscription, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, userUid, includeInactive)
}

func (s *SubscriptionServiceImpl) Create(ctx context.Context, subscription Subscription) (Subscription, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return Subscription{}, err
	}
	if err := validateSubscription(subscription); err != nil {
		return Subscription{}, err
	}
	subscription.UID = uuid.New().String()
	if err := s.repo.Store(ctx, userUid, subscription); err != nil {
		return Subscription{}, err
	}
	return subscription, nil
}

func (s *SubscriptionServiceImpl) Update(ctx context.Context, subscription Subscription) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	if err := validateSubscription(subscription); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, userUid, subscription)
}

func (s *SubscriptionServiceImpl) Delete(ctx context.Context, subscriptionUid string) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, userUid, subscriptionUid)
}

func (s *SubscriptionServiceImpl) MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error) {
	subscriptions, err := s.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	totalsByCurrency := make(map[string]int)
	var order []string
	for _, subscription := range subscriptions {
		if _, seen := totalsByCurrency[subscription.Currency]; !seen {
			order = append(order, subscription.Currency)
		}
		totalsByCurrency[subscription.Currency] += subscription.AmountCents
	}
	totals := make([]MonthlyTotal, 0, len(order))
	for _, currency := range order {
		totals = append(totals, MonthlyTotal{Currency: currency, TotalCents: totalsByCurrency[currency]})
	}
	return totals, nil
}

func validateSubscription(subscription Subscription) error {
	if subscription.Name == "" {
		return errors.New("subscription name is required")
	}
	if subscription.AmountCents < 0 {
		return errors.New("subscription amount cannot be negative")
	}
	if len(subscription.Currency) != 3 {
		return errors.New("subscription currency must be a 3-letter code")
	}
	if subscription.BillingDay < 1 || subscription.BillingDay > 31 {
		return fmt.Errorf("billing day %d is out of range", subscription.BillingDay)
	}
	return nil
}
