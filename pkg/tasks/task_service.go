package tasks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/homeplanner/homeplanner/pkg/user"
)

type TaskService interface {
	GetAll(ctx context.Context, includeDone bool) ([]Task, error)
	Create(ctx context.Context, task Task) (Task, error)
	Update(ctx context.Context, task Task) (bool, error)
	SetDone(ctx context.Context, taskUid string, done bool) (bool, error)
	Delete(ctx context.Context, taskUid string) (bool, error)
}

type TaskServiceImpl struct {
	repo TaskRepo
}

func NewTaskService(repo TaskRepo) *TaskServiceImpl {
	return &TaskServiceImpl{repo: repo}
}

func (s *TaskServiceImpl) GetAll(ctx context.Context, includeDone bool) ([]Task, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, userUid, includeDone)
}

func (s *TaskServiceImpl) Create(ctx context.Context, task Task) (Task, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return Task{}, err
	}
	if task.Title == "" {
		return Task{}, errors.New("task title is required")
	}
	task.UID = uuid.New().String()
	task.Done = false
	if err := s.repo.Store(ctx, userUid, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, task Task) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	if task.Title == "" {
		return false, errors.New("task title is required")
	}
	return s.repo.Update(ctx, userUid, task)
}

func (s *TaskServiceImpl) SetDone(ctx context.Context, taskUid string, done bool) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	tasks, err := s.repo.GetAll(ctx, userUid, true)
	if err != nil {
		return false, err
	}
	for _, task := range tasks {
		if task.UID == taskUid {
			task.Done = done
			return s.repo.Update(ctx, userUid, task)
		}
	}
	return false, nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, taskUid string) (bool, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, userUid, taskUid)
}
