package entity

import "time"

// Subscription configures the daily Slack reminder of a channel.
type Subscription struct {
	ID               int64     `json:"id"`
	SlackChannelID   string    `json:"slack_channel_id"`
	Template         string    `json:"template"`
	NotificationTime string    `json:"notification_time"` // HH:MM format
	ActiveDays       []int     `json:"active_days"`       // ISO weekdays
	IsEnabled        bool      `json:"is_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
