package feed

import (
	"context"
	"sync"
)

// FeedRepoStub is an in-memory FeedRepo for tests.
type FeedRepoStub struct {
	mu    sync.RWMutex
	feeds map[string][]Feed
}

func NewFeedRepoStub() *FeedRepoStub {
	return &FeedRepoStub{feeds: make(map[string][]Feed)}
}

func (s *FeedRepoStub) Store(_ context.Context, userUid string, feed Feed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeds[userUid] = append(s.feeds[userUid], feed)
	return nil
}

func (s *FeedRepoStub) GetAll(_ context.Context, userUid string) ([]Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Feed(nil), s.feeds[userUid]...), nil
}

func (s *FeedRepoStub) Update(_ context.Context, userUid string, feed Feed) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.feeds[userUid] {
		if f.UID == feed.UID {
			s.feeds[userUid][i] = feed
			return true, nil
		}
	}
	return false, nil
}

func (s *FeedRepoStub) DeleteAllForUser(_ context.Context, userUid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.feeds, userUid)
	return nil
}

func (s *FeedRepoStub) Delete(_ context.Context, userUid string, feedUid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.feeds[userUid] {
		if f.UID == feedUid {
			s.feeds[userUid] = append(s.feeds[userUid][:i], s.feeds[userUid][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
