package tracker

import (
	"context"
	"sync"
)

// EntryRepoStub is an in-memory EntryRepo for tests.
type EntryRepoStub struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewEntryRepoStub() *EntryRepoStub {
	return &EntryRepoStub{entries: make(map[string][]Entry)}
}

func (s *EntryRepoStub) Store(_ context.Context, userUid string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userUid] = append(s.entries[userUid], entry)
	return nil
}

func (s *EntryRepoStub) GetAll(_ context.Context, userUid string, kind Kind) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Entry
	for _, entry := range s.entries[userUid] {
		if entry.Kind == kind {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (s *EntryRepoStub) Update(_ context.Context, userUid string, entry Entry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries[userUid] {
		if e.UID == entry.UID && e.Kind == entry.Kind {
			s.entries[userUid][i] = entry
			return true, nil
		}
	}
	return false, nil
}

func (s *EntryRepoStub) DeleteAllForUser(_ context.Context, userUid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userUid)
	return nil
}

func (s *EntryRepoStub) Delete(_ context.Context, userUid string, entryUid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries[userUid] {
		if e.UID == entryUid {
			s.entries[userUid] = append(s.entries[userUid][:i], s.entries[userUid][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
