package notes

import (
	"context"
	"sync"
)

// NoteRepoStub is an in-memory NoteRepo for tests.
type NoteRepoStub struct {
	mu    sync.RWMutex
	notes map[string][]Note
}

func NewNoteRepoStub() *NoteRepoStub {
	return &NoteRepoStub{notes: make(map[string][]Note)}
}

func (s *NoteRepoStub) Store(_ context.Context, userUid string, note Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[userUid] = append(s.notes[userUid], note)
	return nil
}

func (s *NoteRepoStub) GetAll(_ context.Context, userUid string) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.notes[userUid]...), nil
}

func (s *NoteRepoStub) Update(_ context.Context, userUid string, note Note) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes[userUid] {
		if n.UID == note.UID {
			note.CreatedAt = n.CreatedAt
			s.notes[userUid][i] = note
			return true, nil
		}
	}
	return false, nil
}

func (s *NoteRepoStub) DeleteAllForUser(_ context.Context, userUid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notes, userUid)
	return nil
}

func (s *NoteRepoStub) Delete(_ context.Context, userUid string, noteUid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes[userUid] {
		if n.UID == noteUid {
			s.notes[userUid] = append(s.notes[userUid][:i], s.notes[userUid][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
