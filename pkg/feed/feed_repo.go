package feed

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type FeedRepo interface {
	Store(ctx context.Context, userUid string, feed Feed) error
	GetAll(ctx context.Context, userUid string) ([]Feed, error)
	Update(ctx context.Context, userUid string, feed Feed) (bool, error)
	Delete(ctx context.Context, userUid string, feedUid string) (bool, error)
	DeleteAllForUser(ctx context.Context, userUid string) error
}

type FeedRepoImpl struct {
	db *sql.DB
}

func NewFeedRepo(db *sql.DB) *FeedRepoImpl {
	return &FeedRepoImpl{db: db}
}

func (fr FeedRepoImpl) Store(ctx context.Context, userUid string, feed Feed) error {
	query := `INSERT INTO feeds (uid, user_uid, name, url) VALUES ($1, $2, $3, $4)`
	_, err := fr.db.ExecContext(ctx, query, feed.UID, userUid, feed.Name, feed.URL)
	if err != nil {
		err := fmt.Errorf("could not store feed: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (fr FeedRepoImpl) GetAll(ctx context.Context, userUid string) ([]Feed, error) {
	query := `SELECT uid, name, url FROM feeds WHERE user_uid = $1 ORDER BY name`
	rows, err := fr.db.QueryContext(ctx, query, userUid)
	if err != nil {
		err := fmt.Errorf("could not query feeds: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var feeds []Feed
	for rows.Next() {
		var feed Feed
		if err := rows.Scan(&feed.UID, &feed.Name, &feed.URL); err != nil {
			err := fmt.Errorf("could not scan feed: %w", err)
			log.Error(err)
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return feeds, nil
}

func (fr FeedRepoImpl) Update(ctx context.Context, userUid string, feed Feed) (bool, error) {
	query := `UPDATE feeds SET name = $1, url = $2 WHERE uid = $3 AND user_uid = $4`
	result, err := fr.db.ExecContext(ctx, query, feed.Name, feed.URL, feed.UID, userUid)
	if err != nil {
		err := fmt.Errorf("could not update feed: %w", err)
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

func (fr FeedRepoImpl) DeleteAllForUser(ctx context.Context, userUid string) error {
	_, err := fr.db.ExecContext(ctx, `DELETE FROM feeds WHERE user_uid = $1`, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete feeds for user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (fr FeedRepoImpl) Delete(ctx context.Context, userUid string, feedUid string) (bool, error) {
	query := `DELETE FROM feeds WHERE uid = $1 AND user_uid = $2`
	result, err := fr.db.ExecContext(ctx, query, feedUid, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete feed: %w", err)
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
