package tasks

import (
	"context"
	"sync"
)

// TaskRepoStub is an in-memory TaskRepo for tests.
type TaskRepoStub struct {
	mu    sync.RWMutex
	tasks map[string][]Task
}

func NewTaskRepoStub() *TaskRepoStub {
	return &TaskRepoStub{tasks: make(map[string][]Task)}
}

func (s *TaskRepoStub) Store(_ context.Context, userUid string, task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[userUid] = append(s.tasks[userUid], task)
	return nil
}

func (s *TaskRepoStub) GetAll(_ context.Context, userUid string, includeDone bool) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Task
	for _, task := range s.tasks[userUid] {
		if !includeDone && task.Done {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (s *TaskRepoStub) Update(_ context.Context, userUid string, task Task) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks[userUid] {
		if t.UID == task.UID {
			s.tasks[userUid][i] = task
			return true, nil
		}
	}
	return false, nil
}

func (s *TaskRepoStub) DeleteAllForUser(_ context.Context, userUid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, userUid)
	return nil
}

func (s *TaskRepoStub) Delete(_ context.Context, userUid string, taskUid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks[userUid] {
		if t.UID == taskUid {
			s.tasks[userUid] = append(s.tasks[userUid][:i], s.tasks[userUid][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
