package notes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/homeplanner/homeplanner/internal/utils"
	"github.com/homeplanner/homeplanner/pkg/user"
)

type NoteService interface {
	GetAll(ctx context.Context) ([]Note, error)
	Create(ctx context.Context, note Note) (Note, error)
	Update(ctx context.Context, note Note) (bool, error)
	Delete(ctx context.Context, noteUid string) (bool, error)
}

type NoteServiceImpl struct {
	repo  NoteRepo
	clock utils.Clock
}

func NewNoteService(repo NoteRepo, clock utils.Clock) *NoteServiceImpl {
	return &NoteServiceImpl{repo: repo, clock: clock}
}

func (s *NoteServiceImpl) GetAll(ctx context.Context) ([]Note, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, userUid)
}

func (s *NoteServiceImpl) Create(ctx context.Context, note Note) (Note, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return Note{}, err
	}
	if note.Title == "" && note.Content == "" {
		return Note{}, errors.New("note must have a title or content")
	}
	note.UID = uuid.New().String()
	now := s.clock.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	if err := s.repo.Store(ctx, userUid, note); err != nil {
		return Note{}, err
	}
	return note, nil
}

func (s *NoteServiceImpl) Update(ctx context.Context, note Note) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	if note.Title == "" && note.Content == "" {
		return false, errors.New("note must have a title or content")
	}
	note.UpdatedAt = s.clock.Now()
	return s.repo.Update(ctx, userUid, note)
}

func (s *NoteServiceImpl) Delete(ctx context.Context, noteUid string) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, userUid, noteUid)
}
