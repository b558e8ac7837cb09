package tracker

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type EntryRepo interface {
	Store(ctx context.Context, userUid string, entry Entry) error
	GetAll(ctx context.Context, userUid string, kind Kind) ([]Entry, error)
	Update(ctx context.Context, userUid string, entry Entry) (bool, error)
	Delete(ctx context.Context, userUid string, entryUid string) (bool, error)
	DeleteAllForUser(ctx context.Context, userUid string) error
}

type EntryRepoImpl struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepoImpl {
	return &EntryRepoImpl{db: db}
}

func (er EntryRepoImpl) Store(ctx context.Context, userUid string, entry Entry) error {
	query := `INSERT INTO tracker_entries (uid, user_uid, kind, title, entry_date, details)
			VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := er.db.ExecContext(ctx, query,
		entry.UID, userUid, string(entry.Kind), entry.Title,
		entry.Date.Format("2006-01-02"), entry.Details,
	)
	if err != nil {
		err := fmt.Errorf("could not store tracker entry: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (er EntryRepoImpl) GetAll(ctx context.Context, userUid string, kind Kind) ([]Entry, error) {
	query := `SELECT uid, kind, title, entry_date, details FROM tracker_entries
			WHERE user_uid = $1 AND kind = $2 ORDER BY entry_date DESC, title`
	rows, err := er.db.QueryContext(ctx, query, userUid, string(kind))
	if err != nil {
		err := fmt.Errorf("could not query tracker entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var kindString, dateString string
		if err := rows.Scan(&entry.UID, &kindString, &entry.Title, &dateString, &entry.Details); err != nil {
			err := fmt.Errorf("could not scan tracker entry: %w", err)
			log.Error(err)
			return nil, err
		}
		entry.Kind = Kind(kindString)
		if entry.Date, err = time.Parse("2006-01-02", dateString); err != nil {
			err := fmt.Errorf("could not parse tracker entry date: %w", err)
			log.Error(err)
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return entries, nil
}

func (er EntryRepoImpl) Update(ctx context.Context, userUid string, entry Entry) (bool, error) {
	query := `UPDATE tracker_entries SET title = $1, entry_date = $2, details = $3
			WHERE uid = $4 AND user_uid = $5 AND kind = $6`
	result, err := er.db.ExecContext(ctx, query,
		entry.Title, entry.Date.Format("2006-01-02"), entry.Details,
		entry.UID, userUid, string(entry.Kind),
	)
	if err != nil {
		err := fmt.Errorf("could not update tracker entry: %w", err)
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

func (er EntryRepoImpl) DeleteAllForUser(ctx context.Context, userUid string) error {
	_, err := er.db.ExecContext(ctx, `DELETE FROM tracker_entries WHERE user_uid = $1`, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete tracker entries for user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (er EntryRepoImpl) Delete(ctx context.Context, userUid string, entryUid string) (bool, error) {
	query := `DELETE FROM tracker_entries WHERE uid = $1 AND user_uid = $2`
	result, err := er.db.ExecContext(ctx, query, entryUid, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete tracker entry: %w", err)
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
