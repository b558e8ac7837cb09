package feed

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"github.com/homeplanner/homeplanner/pkg/user"
)

type FeedService interface {
	GetAll(ctx context.Context) ([]Feed, error)
	Create(ctx context.Context, feed Feed) (Feed, error)
	Update(ctx context.Context, feed Feed) (bool, error)
	Delete(ctx context.Context, feedUid string) (bool, error)
}

type FeedServiceImpl struct {
	repo FeedRepo
}

func NewFeedService(repo FeedRepo) *FeedServiceImpl {
	return &FeedServiceImpl{repo: repo}
}

func (s *FeedServiceImpl) GetAll(ctx context.Context) ([]Feed, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, userUid)
}

func (s *FeedServiceImpl) Create(ctx context.Context, feed Feed) (Feed, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return Feed{}, err
	}
	if err := validateFeed(feed); err != nil {
		return Feed{}, err
	}
	feed.UID = uuid.New().String()
	if err := s.repo.Store(ctx, userUid, feed); err != nil {
		return Feed{}, err
	}
	return feed, nil
}

func (s *FeedServiceImpl) Update(ctx context.Context, feed Feed) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	if err := validateFeed(feed); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, userUid, feed)
}

func (s *FeedServiceImpl) Delete(ctx context.Context, feedUid string) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, userUid, feedUid)
}

func validateFeed(feed Feed) error {
	if feed.Name == "" {
		return errors.New("feed name is required")
	}
	u, err := url.Parse(feed.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("feed url must be a valid http(s) URL")
	}
	return nil
}
