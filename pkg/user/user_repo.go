package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByUid(ctx context.Context, uid string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, uid string) error
	GetAllUsers(ctx context.Context) ([]User, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

const userColumns = `uid, username, display_name, timezone, week_first_day,
	google_calendar_id, meal_calendar_id, google_task_list_id`

func (r *RepoImpl) CreateUser(ctx context.Context, user User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		user.Uid,
		user.Username,
		user.DisplayName,
		user.Settings.Timezone,
		int(user.Settings.WeekFirstDay),
		user.Settings.GoogleCalendarId,
		user.Settings.MealCalendarId,
		user.Settings.GoogleTaskListId,
	)
	if err != nil {
		err := fmt.Errorf("could not store user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, uid))
}

func (r *RepoImpl) GetUserByUsername(ctx context.Context, username string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *RepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	var weekFirstDay int
	err := row.Scan(
		&user.Uid,
		&user.Username,
		&user.DisplayName,
		&user.Settings.Timezone,
		&weekFirstDay,
		&user.Settings.GoogleCalendarId,
		&user.Settings.MealCalendarId,
		&user.Settings.GoogleTaskListId,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	user.Settings.WeekFirstDay = time.Weekday(weekFirstDay)
	return user, nil
}

func (r *RepoImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	query := `UPDATE users SET
			display_name = $1,
			timezone = $2,
			week_first_day = $3,
			google_calendar_id = $4,
			meal_calendar_id = $5,
			google_task_list_id = $6
		WHERE uid = $7`
	result, err := r.db.ExecContext(ctx, query,
		user.DisplayName,
		user.Settings.Timezone,
		int(user.Settings.WeekFirstDay),
		user.Settings.GoogleCalendarId,
		user.Settings.MealCalendarId,
		user.Settings.GoogleTaskListId,
		user.Uid,
	)
	if err != nil {
		err := fmt.Errorf("could not update user: %w", err)
		log.Error(err)
		return User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return User{}, err
	}
	if rowsAffected == 0 {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *RepoImpl) DeleteUser(ctx context.Context, uid string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE uid = $1", uid)
	if err != nil {
		err := fmt.Errorf("could not delete user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query users: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		var weekFirstDay int
		if err := rows.Scan(
			&user.Uid,
			&user.Username,
			&user.DisplayName,
			&user.Settings.Timezone,
			&weekFirstDay,
			&user.Settings.GoogleCalendarId,
			&user.Settings.MealCalendarId,
			&user.Settings.GoogleTaskListId,
		); err != nil {
			err := fmt.Errorf("could not scan user: %w", err)
			log.Error(err)
			return nil, err
		}
		user.Settings.WeekFirstDay = time.Weekday(weekFirstDay)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return users, nil
}
