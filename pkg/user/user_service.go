package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/homeplanner/homeplanner/internal/event_bus"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, uid string) error
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type ServiceImpl struct {
	repo     Repo
	eventBus *event_bus.EventBus
}

func NewUserService(repo Repo, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	uid, err := CurrentUid(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetUserByUid(ctx, uid)
}

func (s *ServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return s.repo.GetUserByUid(ctx, uid)
}

func (s *ServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	if user.Username == "" {
		return User{}, errors.New("username is required")
	}
	user.Uid = uuid.New().String()
	if user.Settings.Timezone == "" {
		user.Settings.Timezone = "UTC"
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *ServiceImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	uid, err := CurrentUid(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	user.Uid = uid
	return s.repo.UpdateUser(ctx, user)
}

// DeleteUser removes the user row and announces the deletion so other
// features can drop the rows the user owned.
func (s *ServiceImpl) DeleteUser(ctx context.Context, uid string) error {
	if err := s.repo.DeleteUser(ctx, uid); err != nil {
		return err
	}
	return s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.UserDeleted, event_bus.UserDeletedData{Uid: uid}))
}

func (s *ServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAllUsers(ctx)
}

func (s *ServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
