package subscription

import (
	"context"
	"sync"
)

// SubscriptionRepoStub is an in-memory SubscriptionRepo for tests.
type SubscriptionRepoStub struct {
	mu            sync.RWMutex
	subscriptions map[string][]Subscription
}

func NewSubscriptionRepoStub() *SubscriptionRepoStub {
	return &SubscriptionRepoStub{subscriptions: make(map[string][]Subscription)}
}

func (s *SubscriptionRepoStub) Store(_ context.Context, userUid string, subscription Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions[userUid] = append(s.subscriptions[userUid], subscription)
	return nil
}

func (s *SubscriptionRepoStub) GetAll(_ context.Context, userUid string, includeInactive bool) ([]Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Subscription
	for _, subscription := range s.subscriptions[userUid] {
		if !includeInactive && !subscription.Active {
			continue
		}
		out = append(out, subscription)
	}
	return out, nil
}

func (s *SubscriptionRepoStub) Update(_ context.Context, userUid string, subscription Subscription) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subscriptions[userUid] {
		if sub.UID == subscription.UID {
			s.subscriptions[userUid][i] = subscription
			return true, nil
		}
	}
	return false, nil
}

func (s *SubscriptionRepoStub) DeleteAllForUser(_ context.Context, userUid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscriptions, userUid)
	return nil
}

func (s *SubscriptionRepoStub) Delete(_ context.Context, userUid string, subscriptionUid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subscriptions[userUid] {
		if sub.UID == subscriptionUid {
			s.subscriptions[userUid] = append(s.subscriptions[userUid][:i], s.subscriptions[userUid][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
