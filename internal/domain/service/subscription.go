package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"go.uber.org/zap"
)

type subscriptionService struct {
	dm        contract.DataManager
	planner   *planner
	scheduler *scheduler
	log       *zap.Logger
}

func newSubscription(opts Options, planner *planner, scheduler *scheduler) *subscriptionService {
	return &subscriptionService{
		dm:        opts.DataManager,
		planner:   planner,
		scheduler: scheduler,
		log:       opts.Logger.Named("subscription"),
	}
}

// Subscribe creates or updates the daily reminder of a channel. An empty
// notificationTime keeps the current one, or the default for a new
// subscription.
func (s *subscriptionService) Subscribe(slackChannelID, template, notificationTime string) (*entity.Subscription, error) {
	t, err := s.planner.Template(strings.TrimSpace(template))
	if err != nil {
		return nil, err
	}

	notificationTime = strings.TrimSpace(notificationTime)
	if notificationTime != "" {
		if _, err := time.Parse("15:04", notificationTime); err != nil {
			return nil, ErrInvalidTime
		}
	}

	sub, err := s.dm.Subscription().GetByChannelID(slackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if sub == nil {
		sub = &entity.Subscription{
			SlackChannelID:   slackChannelID,
			Template:         t.Name,
			NotificationTime: domain.DefaultNotificationTime,
			ActiveDays:       domain.DefaultActiveDays,
			IsEnabled:        true,
		}
		if notificationTime != "" {
			sub.NotificationTime = notificationTime
		}
		if err := s.dm.Subscription().Create(sub); err != nil {
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
	} else {
		sub.Template = t.Name
		sub.IsEnabled = true
		if notificationTime != "" {
			sub.NotificationTime = notificationTime
		}
		if err := s.dm.Subscription().Update(sub); err != nil {
			return nil, fmt.Errorf("failed to update subscription: %w", err)
		}
	}

	s.log.Info("channel subscribed",
		zap.String("channel", slackChannelID),
		zap.String("template", sub.Template),
		zap.String("time", sub.NotificationTime),
	)
	s.notifyScheduler()
	return sub, nil
}

func (s *subscriptionService) Unsubscribe(slackChannelID string) error {
	if err := s.requireSubscription(slackChannelID); err != nil {
		return err
	}

	if err := s.dm.Subscription().Delete(slackChannelID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	s.notifyScheduler()
	return nil
}

func (s *subscriptionService) Pause(slackChannelID string) error {
	return s.setEnabled(slackChannelID, false)
}

func (s *subscriptionService) Resume(slackChannelID string) error {
	return s.setEnabled(slackChannelID, true)
}

func (s *subscriptionService) Subscription(slackChannelID string) (*entity.Subscription, error) {
	return s.dm.Subscription().GetByChannelID(slackChannelID)
}

func (s *subscriptionService) setEnabled(slackChannelID string, enabled bool) error {
	if err := s.requireSubscription(slackChannelID); err != nil {
		return err
	}

	if err := s.dm.Subscription().SetEnabled(slackChannelID, enabled); err != nil {
		return fmt.Errorf("failed to set subscription status: %w", err)
	}

	s.notifyScheduler()
	return nil
}

func (s *subscriptionService) requireSubscription(slackChannelID string) error {
	sub, err := s.dm.Subscription().GetByChannelID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return ErrNotSubscribed
	}
	return nil
}

func (s *subscriptionService) notifyScheduler() {
	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}
}
