package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notify-hub/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (model.Notification, error)
	MarkSent(context.Context, uuid.UUID, time.Time) error
	MarkFailed(context.Context, uuid.UUID, string) error
	GetDueNotifications(context.Context, time.Time) ([]model.Notification, error)
	ListNotifications(context.Context, model.Channel, model.Status, int, int) ([]model.Notification, int, error)
	GetNotificationStatusByID(context.Context, uuid.UUID) (model.Status, error)
}

// ChannelSender delivers notification content for one channel. The subject
// argument is used by the email sender and ignored by SMS.
type ChannelSender interface {
	Send(recipient, subject, body string, vars map[string]string) (string, error)
	SendTemplated(recipient, templateName string, vars map[string]string) (string, error)
	TemplateNames() []string
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// SubmitInput is the caller-supplied description of a notification to send.
type SubmitInput struct {
	Channel     model.Channel
	Recipient   string
	Subject     string
	Message     string
	Template    string
	Variables   map[string]string
	ScheduledAt time.Time // zero value means "send now"
}

// BatchResult is the per-recipient outcome of a batch submission.
type BatchResult struct {
	Recipient      string `json:"recipient"`
	Status         string `json:"status"` // "success" or "error"
	NotificationID string `json:"notificationId,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Service orchestrates notification dispatch: it creates records, decides
// immediate versus deferred delivery and commits status transitions.
type Service struct {
	repo       notificationRepository
	senders    map[model.Channel]ChannelSender
	cache      cache
	batchLimit int // max simultaneous sends during batch fan-out
}

func NewService(
	repo notificationRepository,
	senders map[model.Channel]ChannelSender,
	cache cache,
	batchLimit int,
) *Service {
	if batchLimit < 1 {
		batchLimit = 1
	}
	return &Service{repo: repo, senders: senders, cache: cache, batchLimit: batchLimit}
}

// SubmitNotification creates a pending record and, when the notification is
// already due, performs the single send attempt before returning.
//
// The returned record carries the outcome: callers read Status to learn the
// result and are never blocked on deferred sends. Only store failures are
// returned as errors; send failures surface as a failed record.
func (s *Service) SubmitNotification(ctx context.Context, strategy retry.Strategy, in SubmitInput) (model.Notification, error) {
	now := time.Now()

	scheduledAt := in.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = now
	}

	n := model.Notification{
		Channel:     in.Channel,
		Recipient:   in.Recipient,
		Subject:     in.Subject,
		Message:     in.Message,
		Template:    in.Template,
		Variables:   in.Variables,
		Status:      model.StatusPending,
		ScheduledAt: scheduledAt,
	}

	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	s.cacheStatus(ctx, strategy, created.ID, created.Status)

	if !scheduledAt.After(now) {
		return s.deliver(ctx, strategy, created)
	}

	return created, nil
}

// SubmitBatch submits one notification per recipient, isolating failures:
// a failing recipient yields an error entry and never aborts the rest.
//
// Results are ordered like the input recipients. Sends fan out with bounded
// concurrency since recipients are independent.
func (s *Service) SubmitBatch(ctx context.Context, strategy retry.Strategy, in SubmitInput, recipients []string) []BatchResult {
	results := make([]BatchResult, len(recipients))

	sem := make(chan struct{}, s.batchLimit)
	var wg sync.WaitGroup

	for i, recipient := range recipients {
		wg.Add(1)

		go func(i int, recipient string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			single := in
			single.Recipient = recipient

			n, err := s.SubmitNotification(ctx, strategy, single)
			if err != nil {
				results[i] = BatchResult{Recipient: recipient, Status: "error", Error: err.Error()}
				return
			}

			res := BatchResult{Recipient: recipient, NotificationID: n.ID.String()}
			if n.Status == model.StatusFailed {
				res.Status = "error"
				res.Error = n.Error
			} else {
				res.Status = "success"
			}
			results[i] = res
		}(i, recipient)
	}

	wg.Wait()

	return results
}

// ProcessDue runs one delivery pass over every due pending notification and
// returns how many records it attempted.
//
// A failure inside one record's send is contained to that record; only a
// store failure on the due query aborts the pass.
func (s *Service) ProcessDue(ctx context.Context, strategy retry.Strategy) (int, error) {
	due, err := s.repo.GetDueNotifications(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("get due notifications: %w", err)
	}

	for _, n := range due {
		if _, err := s.deliver(ctx, strategy, n); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to finalize due notification")
		}
	}

	return len(due), nil
}

// deliver performs the one send attempt for a pending notification and
// commits the terminal transition: sent on success, failed on any send
// error (unknown channel, unknown template, transport fault).
//
// The returned error reports store failures only; the record's terminal
// state is always reflected in the returned notification.
func (s *Service) deliver(ctx context.Context, strategy retry.Strategy, n model.Notification) (model.Notification, error) {
	sendErr := s.send(n)

	if sendErr != nil {
		n.Status = model.StatusFailed
		n.Error = sendErr.Error()
		zlog.Logger.Warn().Err(sendErr).Str("id", n.ID.String()).Str("channel", string(n.Channel)).Msg("notification send failed")

		if err := s.repo.MarkFailed(ctx, n.ID, n.Error); err != nil {
			return n, fmt.Errorf("mark notification failed: %w", err)
		}
	} else {
		sentAt := time.Now()
		n.Status = model.StatusSent
		n.SentAt = &sentAt

		if err := s.repo.MarkSent(ctx, n.ID, sentAt); err != nil {
			return n, fmt.Errorf("mark notification sent: %w", err)
		}
	}

	s.cacheStatus(ctx, strategy, n.ID, n.Status)

	return n, nil
}

// send routes the notification to its channel sender, templated or literal.
func (s *Service) send(n model.Notification) error {
	snd, ok := s.senders[n.Channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", n.Channel)
	}

	var err error
	if n.Template != "" {
		_, err = snd.SendTemplated(n.Recipient, n.Template, n.Variables)
	} else {
		_, err = snd.Send(n.Recipient, n.Subject, n.Message, n.Variables)
	}

	return err
}

// GetHistory returns a page of notifications, newest first, with the total
// match count.
func (s *Service) GetHistory(ctx context.Context, channel model.Channel, status model.Status, page, limit int) ([]model.Notification, int, error) {
	notifications, total, err := s.repo.ListNotifications(ctx, channel, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, total, nil
}

// GetNotificationStatusByID reads the status through the cache, falling
// back to the store on a miss.
func (s *Service) GetNotificationStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if err == nil && cached != "" {
		return model.Status(cached), nil
	}

	status, err := s.repo.GetNotificationStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return status, nil
}

// TemplateNames lists the registered template names per channel.
func (s *Service) TemplateNames() map[model.Channel][]string {
	names := make(map[model.Channel][]string, len(s.senders))
	for channel, snd := range s.senders {
		names[channel] = snd.TemplateNames()
	}

	return names
}

// cacheStatus best-effort caches the latest status; a cache fault is logged
// and never affects the dispatch outcome.
func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}
