package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type TaskRepo interface {
	Store(ctx context.Context, userUid string, task Task) error
	GetAll(ctx context.Context, userUid string, includeDone bool) ([]Task, error)
	Update(ctx context.Context, userUid string, task Task) (bool, error)
	Delete(ctx context.Context, userUid string, taskUid string) (bool, error)
	DeleteAllForUser(ctx context.Context, userUid string) error
}

type TaskRepoImpl struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepoImpl {
	return &TaskRepoImpl{db: db}
}

func (tr TaskRepoImpl) Store(ctx context.Context, userUid string, task Task) error {
	query := `INSERT INTO tasks (uid, user_uid, title, notes, due_date, done)
			VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tr.db.ExecContext(ctx, query,
		task.UID, userUid, task.Title, task.Notes, dueDateParam(task), task.Done,
	)
	if err != nil {
		err := fmt.Errorf("could not store task: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (tr TaskRepoImpl) GetAll(ctx context.Context, userUid string, includeDone bool) ([]Task, error) {
	doneWhereQuery := "AND done = FALSE"
	if includeDone {
		doneWhereQuery = ""
	}
	query := fmt.Sprintf(
		`SELECT uid, title, notes, due_date, done FROM tasks
				WHERE user_uid = $1 %s ORDER BY due_date IS NULL, due_date, title`,
		doneWhereQuery,
	)
	rows, err := tr.db.QueryContext(ctx, query, userUid)
	if err != nil {
		err := fmt.Errorf("could not query tasks: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var task Task
		var dueDate sql.NullString
		if err := rows.Scan(&task.UID, &task.Title, &task.Notes, &dueDate, &task.Done); err != nil {
			err := fmt.Errorf("could not scan task: %w", err)
			log.Error(err)
			return nil, err
		}
		if dueDate.Valid {
			parsed, err := time.Parse("2006-01-02", dueDate.String)
			if err != nil {
				err := fmt.Errorf("could not parse task due date: %w", err)
				log.Error(err)
				return nil, err
			}
			task.DueDate = parsed
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return tasks, nil
}

func (tr TaskRepoImpl) Update(ctx context.Context, userUid string, task Task) (bool, error) {
	query := `UPDATE tasks SET title = $1, notes = $2, due_date = $3, done = $4
			WHERE uid = $5 AND user_uid = $6`
	result, err := tr.db.ExecContext(ctx, query,
		task.Title, task.Notes, dueDateParam(task), task.Done, task.UID, userUid,
	)
	if err != nil {
		err := fmt.Errorf("could not update task: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (tr TaskRepoImpl) DeleteAllForUser(ctx context.Context, userUid string) error {
	_, err := tr.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_uid = $1`, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete tasks for user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (tr TaskRepoImpl) Delete(ctx context.Context, userUid string, taskUid string) (bool, error) {
	query := `DELETE FROM tasks WHERE uid = $1 AND user_uid = $2`
	result, err := tr.db.ExecContext(ctx, query, taskUid, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete task: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func dueDateParam(task Task) interface{} {
	if task.DueDate.IsZero() {
		return nil
	}
	return task.DueDate.Format("2006-01-02")
}
