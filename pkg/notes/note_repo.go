package notes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type NoteRepo interface {
	Store(ctx context.Context, userUid string, note Note) error
	GetAll(ctx context.Context, userUid string) ([]Note, error)
	Update(ctx context.Context, userUid string, note Note) (bool, error)
	Delete(ctx context.Context, userUid string, noteUid string) (bool, error)
	DeleteAllForUser(ctx context.Context, userUid string) error
}

type NoteRepoImpl struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepoImpl {
	return &NoteRepoImpl{db: db}
}

func (nr NoteRepoImpl) Store(ctx context.Context, userUid string, note Note) error {
	query := `INSERT INTO notes (uid, user_uid, title, content, pinned, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := nr.db.ExecContext(ctx, query,
		note.UID, userUid, note.Title, note.Content, note.Pinned,
		note.CreatedAt.UTC().Format(time.RFC3339), note.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		err := fmt.Errorf("could not store note: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (nr NoteRepoImpl) GetAll(ctx context.Context, userUid string) ([]Note, error) {
	query := `SELECT uid, title, content, pinned, created_at, updated_at
			FROM notes WHERE user_uid = $1 ORDER BY pinned DESC, updated_at DESC`
	rows, err := nr.db.QueryContext(ctx, query, userUid)
	if err != nil {
		err := fmt.Errorf("could not query notes: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var note Note
		var createdAt, updatedAt string
		if err := rows.Scan(&note.UID, &note.Title, &note.Content, &note.Pinned, &createdAt, &updatedAt); err != nil {
			err := fmt.Errorf("could not scan note: %w", err)
			log.Error(err)
			return nil, err
		}
		if note.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			err := fmt.Errorf("could not parse note created_at: %w", err)
			log.Error(err)
			return nil, err
		}
		if note.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			err := fmt.Errorf("could not parse note updated_at: %w", err)
			log.Error(err)
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return notes, nil
}

func (nr NoteRepoImpl) Update(ctx context.Context, userUid string, note Note) (bool, error) {
	query := `UPDATE notes SET title = $1, content = $2, pinned = $3, updated_at = $4
			WHERE uid = $5 AND user_uid = $6`
	result, err := nr.db.ExecContext(ctx, query,
		note.Title, note.Content, note.Pinned, note.UpdatedAt.UTC().Format(time.RFC3339),
		note.UID, userUid,
	)
	if err != nil {
		err := fmt.Errorf("could not update note: %w", err)
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

func (nr NoteRepoImpl) DeleteAllForUser(ctx context.Context, userUid string) error {
	_, err := nr.db.ExecContext(ctx, `DELETE FROM notes WHERE user_uid = $1`, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete notes for user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (nr NoteRepoImpl) Delete(ctx context.Context, userUid string, noteUid string) (bool, error) {
	query := `DELETE FROM notes WHERE uid = $1 AND user_uid = $2`
	result, err := nr.db.ExecContext(ctx, query, noteUid, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete note: %w", err)
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
