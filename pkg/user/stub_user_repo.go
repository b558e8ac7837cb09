package user

import (
	"context"
	"sync"
)

// RepoStub is an in-memory Repo used by tests.
type RepoStub struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewRepoStub() *RepoStub {
	return &RepoStub{users: make(map[string]User)}
}

func (r *RepoStub) CreateUser(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Uid] = user
	return nil
}

func (r *RepoStub) GetUserByUid(_ context.Context, uid string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[uid]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *RepoStub) GetUserByUsername(_ context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *RepoStub) UpdateUser(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Uid]; !ok {
		return User{}, ErrUserNotFound
	}
	r.users[user.Uid] = user
	return user, nil
}

func (r *RepoStub) DeleteUser(_ context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, uid)
	return nil
}

func (r *RepoStub) GetAllUsers(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}
