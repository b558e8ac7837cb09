package tracker

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/homeplanner/homeplanner/pkg/user"
)

type EntryService interface {
	GetAll(ctx context.Context, kind Kind) ([]Entry, error)
	Create(ctx context.Context, entry Entry) (Entry, error)
	Update(ctx context.Context, entry Entry) (bool, error)
	Delete(ctx context.Context, entryUid string) (bool, error)
}

type EntryServiceImpl struct {
	repo EntryRepo
}

func NewEntryService(repo EntryRepo) *EntryServiceImpl {
	return &EntryServiceImpl{repo: repo}
}

func (s *EntryServiceImpl) GetAll(ctx context.Context, kind Kind) ([]Entry, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, userUid, kind)
}

func (s *EntryServiceImpl) Create(ctx context.Context, entry Entry) (Entry, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return Entry{}, err
	}
	if err := validateEntry(entry); err != nil {
		return Entry{}, err
	}
	entry.UID = uuid.New().String()
	if err := s.repo.Store(ctx, userUid, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (s *EntryServiceImpl) Update(ctx context.Context, entry Entry) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	if err := validateEntry(entry); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, userUid, entry)
}

func (s *EntryServiceImpl) Delete(ctx context.Context, entryUid string) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, userUid, entryUid)
}

func validateEntry(entry Entry) error {
	if _, err := ParseKind(string(entry.Kind)); err != nil {
		return err
	}
	if entry.Title == "" {
		return errors.New("entry title is required")
	}
	if entry.Date.IsZero() {
		return errors.New("entry date is required")
	}
	return nil
}
