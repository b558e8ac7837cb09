package subscription

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type SubscriptionRepo interface {
	Store(ctx context.Context, userUid string, subscription Subscription) error
	GetAll(ctx context.Context, userUid string, includeInactive bool) ([]Subscription, error)
	Update(ctx context.Context, userUid string, subscription Subscription) (bool, error)
	Delete(ctx context.Context, userUid string, subscriptionUid string) (bool, error)
	DeleteAllForUser(ctx context.Context, userUid string) error
}

type SubscriptionRepoImpl struct {
	db *sql.DB
}

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepoImpl {
	return &SubscriptionRepoImpl{db: db}
}

func (sr SubscriptionRepoImpl) Store(ctx context.Context, userUid string, subscription Subscription) error {
	query := `INSERT INTO subscriptions (uid, user_uid, name, amount_cents, currency, billing_day, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := sr.db.ExecContext(ctx, query,
		subscription.UID, userUid, subscription.Name, subscription.AmountCents,
		subscription.Currency, subscription.BillingDay, subscription.Active,
	)
	if err != nil {
		err := fmt.Errorf("could not store subscription: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (sr SubscriptionRepoImpl) GetAll(ctx context.Context, userUid string, includeInactive bool) ([]Subscription, error) {
	activeWhereQuery := "AND active = TRUE"
	if includeInactive {
		activeWhereQuery = ""
	}
	query := fmt.Sprintf(
		`SELECT uid, name, amount_cents, currency, billing_day, active FROM subscriptions
				WHERE user_uid = $1 %s ORDER BY name`,
		activeWhereQuery,
	)
	rows, err := sr.db.QueryContext(ctx, query, userUid)
	if err != nil {
		err := fmt.Errorf("could not query subscriptions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var subscriptions []Subscription
	for rows.Next() {
		var subscription Subscription
		if err := rows.Scan(
			&subscription.UID,
			&subscription.Name,
			&subscription.AmountCents,
			&subscription.Currency,
			&subscription.BillingDay,
			&subscription.Active,
		); err != nil {
			err := fmt.Errorf("could not scan subscription: %w", err)
			log.Error(err)
			return nil, err
		}
		subscriptions = append(subscriptions, subscription)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return subscriptions, nil
}

func (sr SubscriptionRepoImpl) Update(ctx context.Context, userUid string, subscription Subscription) (bool, error) {
	query := `UPDATE subscriptions SET name = $1, amount_cents = $2, currency = $3, billing_day = $4, active = $5
			WHERE uid = $6 AND user_uid = $7`
	result, err := sr.db.ExecContext(ctx, query,
		subscription.Name, subscription.AmountCents, subscription.Currency,
		subscription.BillingDay, subscription.Active, subscription.UID, userUid,
	)
	if err != nil {
		err := fmt.Errorf("could not update subscription: %w", err)
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

func (sr SubscriptionRepoImpl) DeleteAllForUser(ctx context.Context, userUid string) error {
	_, err := sr.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE user_uid = $1`, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete subscriptions for user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (sr SubscriptionRepoImpl) Delete(ctx context.Context, userUid string, subscriptionUid string) (bool, error) {
	query := `DELETE FROM subscriptions WHERE uid = $1 AND user_uid = $2`
	result, err := sr.db.ExecContext(ctx, query, subscriptionUid, userUid)
	if err != nil {
		err := fmt.Errorf("could not delete subscription: %w", err)
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
