package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

type subscriptionRepo struct {
	db dbConn
}

func newSubscriptionRepo(db dbConn) contract.SubscriptionRepo {
	return &subscriptionRepo{db: db}
}

const subscriptionColumns = `id, slack_channel_id, template, notification_time, active_days, is_enabled, created_at, updated_at`

func (r *subscriptionRepo) Create(subscription *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (slack_channel_id, template, notification_time, active_days, is_enabled)
		VALUES (?, ?, ?, ?, ?)
	`

	activeDaysJSON, err := json.Marshal(subscription.ActiveDays)
	if err != nil {
		return fmt.Errorf("failed to marshal active days: %w", err)
	}

	result, err := r.db.Exec(query,
		subscription.SlackChannelID,
		subscription.Template,
		subscription.NotificationTime,
		string(activeDaysJSON),
		subscription.IsEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	subscription.ID = id
	return nil
}

func (r *subscriptionRepo) GetByChannelID(slackChannelID string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE slack_channel_id = ?`

	subscription, err := scanSubscription(r.db.QueryRow(query, slackChannelID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return subscription, nil
}

func (r *subscriptionRepo) Update(subscription *entity.Subscription) error {
	query := `
		UPDATE subscriptions SET
			template = ?,
			notification_time = ?,
			active_days = ?,
			is_enabled = ?,
			updated_at = ?
		WHERE slack_channel_id = ?
	`

	activeDaysJSON, err := json.Marshal(subscription.ActiveDays)
	if err != nil {
		return fmt.Errorf("failed to marshal active days: %w", err)
	}

	_, err = r.db.Exec(query,
		subscription.Template,
		subscription.NotificationTime,
		string(activeDaysJSON),
		subscription.IsEnabled,
		time.Now().UTC(),
		subscription.SlackChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}

func (r *subscriptionRepo) Delete(slackChannelID string) error {
	query := `DELETE FROM subscriptions WHERE slack_channel_id = ?`

	_, err := r.db.Exec(query, slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	return nil
}

func (r *subscriptionRepo) GetEnabled() ([]*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE is_enabled = 1 ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled subscriptions: %w", err)
	}
	defer rows.Close()

	var subscriptions []*entity.Subscription
	for rows.Next() {
		subscription, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subscriptions = append(subscriptions, subscription)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}

	return subscriptions, nil
}

func (r *subscriptionRepo) SetEnabled(slackChannelID string, enabled bool) error {
	query := `
		UPDATE subscriptions SET
			is_enabled = ?,
			updated_at = ?
		WHERE slack_channel_id = ?
	`

	_, err := r.db.Exec(query, enabled, time.Now().UTC(), slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to set subscription enabled status: %w", err)
	}

	return nil
}

func scanSubscription(row rowScanner) (*entity.Subscription, error) {
	subscription := &entity.Subscription{}
	var activeDaysJSON string
	err := row.Scan(
		&subscription.ID,
		&subscription.SlackChannelID,
		&subscription.Template,
		&subscription.NotificationTime,
		&activeDaysJSON,
		&subscription.IsEnabled,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(activeDaysJSON), &subscription.ActiveDays); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active days: %w", err)
	}

	return subscription, nil
}
