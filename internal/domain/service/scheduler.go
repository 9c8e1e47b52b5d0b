package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	slackcmd "github.com/diegoclair/gpns-planner/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const (
	// idleWait is how long the loop sleeps when no channel is subscribed.
	idleWait = time.Hour
	// sentCooldown keeps the loop from firing twice for the same minute.
	sentCooldown = time.Minute
)

type scheduler struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	planner     *planner
	log         *zap.Logger
	loc         *time.Location
	now         func() time.Time

	idleWait     time.Duration
	sentCooldown time.Duration

	mu            sync.Mutex
	configChanged chan struct{}
	stopChan      chan struct{}
	done          chan struct{}
	running       bool
}

func newScheduler(opts Options, planner *planner) *scheduler {
	return &scheduler{
		dm:            opts.DataManager,
		slackClient:   opts.Slack,
		planner:       planner,
		log:           opts.Logger.Named("scheduler"),
		loc:           opts.Location,
		now:           opts.Now,
		idleWait:      idleWait,
		sentCooldown:  sentCooldown,
		configChanged: make(chan struct{}, 1),
		running:       false,
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	s.log.Info("scheduler starting")
	go s.mainLoop(s.stopChan, s.done)
}

// Stop ends the loop and waits for in-flight notifications.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	done := s.done
	s.running = false
	s.mu.Unlock()

	<-done
}

// Run starts the scheduler and stops it when ctx is done.
func (s *scheduler) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return nil
}

func (s *scheduler) NotifyConfigChange() {
	select {
	case s.configChanged <- struct{}{}:
	default:
		// a recalculation is already pending
	}
}

func (s *scheduler) mainLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		nextTime, channelIDs := s.findNextNotification()

		if len(channelIDs) == 0 {
			s.log.Debug("no subscribed channel, waiting", zap.Duration("wait", s.idleWait))
			if !s.wait(s.idleWait, stop) {
				return
			}
			continue
		}

		s.log.Info("next notification scheduled",
			zap.Time("at", nextTime),
			zap.Int("channels", len(channelIDs)),
		)

		if !s.wait(nextTime.Sub(s.now()), stop) {
			return
		}
		if nextTime.After(s.now()) {
			// woken up by a configuration change
			continue
		}

		s.sendNotifications(channelIDs, nextTime)

		timer := time.NewTimer(s.sentCooldown)
		select {
		case <-timer.C:
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// wait blocks for d or until the configuration changes. It returns false
// when the scheduler is stopped.
func (s *scheduler) wait(d time.Duration, stop <-chan struct{}) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-s.configChanged:
		s.log.Debug("configuration changed, recalculating schedule")
		return true
	case <-stop:
		return false
	}
}

func (s *scheduler) findNextNotification() (time.Time, []string) {
	subscriptions, err := s.dm.Subscription().GetEnabled()
	if err != nil {
		s.log.Error("failed to get enabled subscriptions", zap.Error(err))
		return time.Time{}, nil
	}

	if len(subscriptions) == 0 {
		return time.Time{}, nil
	}

	now := s.now().In(s.loc)

	type channelNext struct {
		channelID string
		nextTime  time.Time
	}

	var allNext []channelNext
	for _, sub := range subscriptions {
		nextTime := s.calculateNextForSubscription(sub, now)
		if !nextTime.IsZero() {
			allNext = append(allNext, channelNext{
				channelID: sub.SlackChannelID,
				nextTime:  nextTime,
			})
		}
	}

	if len(allNext) == 0 {
		return time.Time{}, nil
	}

	sort.SliceStable(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	earliestTime := allNext[0].nextTime

	var channelIDs []string
	for _, cn := range allNext {
		if !cn.nextTime.Equal(earliestTime) {
			break
		}
		channelIDs = append(channelIDs, cn.channelID)
	}

	return earliestTime, channelIDs
}

// calculateNextForSubscription returns the next notification instant
// strictly after now, or the zero time when the subscription is invalid.
func (s *scheduler) calculateNextForSubscription(sub *entity.Subscription, now time.Time) time.Time {
	hour, minute, err := parseClock(sub.NotificationTime)
	if err != nil {
		s.log.Warn("invalid notification time",
			zap.String("channel", sub.SlackChannelID),
			zap.String("time", sub.NotificationTime),
		)
		return time.Time{}
	}

	if len(sub.ActiveDays) == 0 {
		s.log.Warn("no active days configured", zap.String("channel", sub.SlackChannelID))
		return time.Time{}
	}

	activeDays := make(map[int]bool, len(sub.ActiveDays))
	for _, day := range sub.ActiveDays {
		activeDays[day] = true
	}

	now = now.In(s.loc)
	for i := 0; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		candidate := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, s.loc)
		if activeDays[domain.ISOWeekday(candidate.Weekday())] && candidate.After(now) {
			return candidate
		}
	}

	return time.Time{}
}

func parseClock(value string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(value, ":")
	if !ok {
		return 0, 0, fmt.Errorf("missing separator in %q", value)
	}
	if hour, err = strconv.Atoi(h); err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	if minute, err = strconv.Atoi(m); err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}

func (s *scheduler) sendNotifications(channelIDs []string, at time.Time) {
	s.log.Info("sending notifications", zap.Int("channels", len(channelIDs)))

	var wg sync.WaitGroup
	for _, channelID := range channelIDs {
		wg.Add(1)
		go func(cID string) {
			defer wg.Done()
			if err := s.sendNotificationToChannel(cID, at); err != nil {
				s.log.Error("failed to send notification", zap.String("channel", cID), zap.Error(err))
			}
		}(channelID)
	}
	wg.Wait()
}

func (s *scheduler) sendNotificationToChannel(channelID string, at time.Time) error {
	sub, err := s.dm.Subscription().GetByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return ErrNotSubscribed
	}

	var message string
	task, err := s.planner.Today(context.Background(), sub.Template, at)
	if err != nil {
		message = fmt.Sprintf("⚠️ *Planning %s* : modèle introuvable. Utilisez `/planning subscribe MODÈLE` pour en choisir un autre.", sub.Template)
	} else {
		message = slackcmd.FormatDayTask(sub.Template, at.Format(domain.DateLayout), task)
	}

	_, _, err = s.slackClient.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	s.log.Info("notification sent", zap.String("channel", channelID), zap.String("template", sub.Template))
	return nil
}
