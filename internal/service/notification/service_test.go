package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/notify-hub/internal/mocks/service/notification"
	"github.com/aliskhannn/notify-hub/internal/model"
)

type serviceMocks struct {
	repo  *mocks.MocknotificationRepository
	email *mocks.MockChannelSender
	sms   *mocks.MockChannelSender
	cache *mocks.Mockcache
}

func setupService(t *testing.T, batchLimit int) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:  mocks.NewMocknotificationRepository(ctrl),
		email: mocks.NewMockChannelSender(ctrl),
		sms:   mocks.NewMockChannelSender(ctrl),
		cache: mocks.NewMockcache(ctrl),
	}

	// Status caching is best-effort and not the subject under test.
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	senders := map[model.Channel]ChannelSender{
		model.ChannelEmail: m.email,
		model.ChannelSMS:   m.sms,
	}

	return NewService(m.repo, senders, m.cache, batchLimit), m
}

func expectCreate(m serviceMocks) {
	m.repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
		DoAndReturn(func(_ context.Context, n model.Notification) (model.Notification, error) {
			n.ID = uuid.New()
			n.CreatedAt = time.Now()
			n.UpdatedAt = n.CreatedAt
			return n, nil
		}).
		AnyTimes()
}

func TestService_SubmitNotification_ImmediateSent(t *testing.T) {
	svc, m := setupService(t, 1)
	strategy := retry.Strategy{}

	expectCreate(m)
	m.email.EXPECT().
		Send("user@example.com", "Hi", "Hello {{name}}", map[string]string{"name": "Alice"}).
		Return("<id@host>", nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	n, err := svc.SubmitNotification(context.Background(), strategy, SubmitInput{
		Channel:   model.ChannelEmail,
		Recipient: "user@example.com",
		Subject:   "Hi",
		Message:   "Hello {{name}}",
		Variables: map[string]string{"name": "Alice"},
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, n.Status)
	assert.NotNil(t, n.SentAt)
	assert.Empty(t, n.Error)
}

func TestService_SubmitNotification_ImmediateFailed(t *testing.T) {
	svc, m := setupService(t, 1)
	strategy := retry.Strategy{}

	expectCreate(m)
	m.sms.EXPECT().
		Send("+15551234567", "", "hi", gomock.Nil()).
		Return("", errors.New("twilio API error: 401 Unauthorized"))
	m.repo.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), "twilio API error: 401 Unauthorized").
		Return(nil)

	n, err := svc.SubmitNotification(context.Background(), strategy, SubmitInput{
		Channel:   model.ChannelSMS,
		Recipient: "+15551234567",
		Message:   "hi",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusFailed, n.Status)
	assert.Nil(t, n.SentAt)
	assert.Contains(t, n.Error, "401")
}

func TestService_SubmitNotification_Deferred(t *testing.T) {
	svc, m := setupService(t, 1)
	strategy := retry.Strategy{}

	expectCreate(m)
	// No sender or terminal-state expectations: a future notification must
	// stay pending until the poller picks it up.

	n, err := svc.SubmitNotification(context.Background(), strategy, SubmitInput{
		Channel:     model.ChannelEmail,
		Recipient:   "user@example.com",
		Message:     "later",
		ScheduledAt: time.Now().Add(time.Hour),
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, n.Status)
	assert.Nil(t, n.SentAt)
}

func TestService_SubmitNotification_UnknownTemplate(t *testing.T) {
	svc, m := setupService(t, 1)
	strategy := retry.Strategy{}

	expectCreate(m)
	m.email.EXPECT().
		SendTemplated("user@example.com", "does-not-exist", gomock.Nil()).
		Return("", errors.New("unknown template: does-not-exist"))
	m.repo.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), "unknown template: does-not-exist").
		Return(nil)

	n, err := svc.SubmitNotification(context.Background(), strategy, SubmitInput{
		Channel:   model.ChannelEmail,
		Recipient: "user@example.com",
		Template:  "does-not-exist",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusFailed, n.Status)
	assert.Contains(t, n.Error, "does-not-exist")
}

func TestService_SubmitNotification_UnknownChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocknotificationRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := NewService(repoMock, map[model.Channel]ChannelSender{}, cacheMock, 1)

	repoMock.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (model.Notification, error) {
			n.ID = uuid.New()
			return n, nil
		})
	repoMock.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), "unknown channel email").Return(nil)

	n, err := svc.SubmitNotification(context.Background(), retry.Strategy{}, SubmitInput{
		Channel:   model.ChannelEmail,
		Recipient: "user@example.com",
		Message:   "hi",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusFailed, n.Status)
}

func TestService_SubmitNotification_CreateFails(t *testing.T) {
	svc, m := setupService(t, 1)

	storeErr := errors.New("connection reset")
	m.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(model.Notification{}, storeErr)

	_, err := svc.SubmitNotification(context.Background(), retry.Strategy{}, SubmitInput{
		Channel:   model.ChannelEmail,
		Recipient: "user@example.com",
		Message:   "hi",
	})

	assert.ErrorIs(t, err, storeErr)
}

func TestService_SubmitBatch_PartialFailure(t *testing.T) {
	svc, m := setupService(t, 2)
	strategy := retry.Strategy{}

	expectCreate(m)
	m.email.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(recipient, _, _ string, _ map[string]string) (string, error) {
			if recipient == "b@example.com" {
				return "", errors.New("mailbox unavailable")
			}
			return "<id@host>", nil
		}).
		Times(3)
	m.repo.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.repo.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), "mailbox unavailable").Return(nil)

	recipients := []string{"a@example.com", "b@example.com", "c@example.com"}
	results := svc.SubmitBatch(context.Background(), strategy, SubmitInput{
		Channel: model.ChannelEmail,
		Subject: "Hi",
		Message: "hello",
	}, recipients)

	assert.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, recipients[i], r.Recipient)
	}
	assert.Equal(t, "success", results[0].Status)
	assert.Equal(t, "error", results[1].Status)
	assert.Equal(t, "mailbox unavailable", results[1].Error)
	assert.Equal(t, "success", results[2].Status)
	assert.NotEmpty(t, results[0].NotificationID)
}

func TestService_SubmitBatch_CreateFailureIsolated(t *testing.T) {
	svc, m := setupService(t, 1)
	strategy := retry.Strategy{}

	m.repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (model.Notification, error) {
			if n.Recipient == "a@example.com" {
				return model.Notification{}, errors.New("store unavailable")
			}
			n.ID = uuid.New()
			return n, nil
		}).
		Times(2)
	m.email.EXPECT().Send("b@example.com", gomock.Any(), gomock.Any(), gomock.Any()).Return("<id@host>", nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	results := svc.SubmitBatch(context.Background(), strategy, SubmitInput{
		Channel: model.ChannelEmail,
		Message: "hello",
	}, []string{"a@example.com", "b@example.com"})

	assert.Equal(t, "error", results[0].Status)
	assert.Contains(t, results[0].Error, "store unavailable")
	assert.Empty(t, results[0].NotificationID)
	assert.Equal(t, "success", results[1].Status)
}

func TestService_ProcessDue(t *testing.T) {
	svc, m := setupService(t, 1)
	strategy := retry.Strategy{}

	due := []model.Notification{
		{ID: uuid.New(), Channel: model.ChannelEmail, Recipient: "a@example.com", Message: "one", Status: model.StatusPending},
		{ID: uuid.New(), Channel: model.ChannelSMS, Recipient: "+15551234567", Message: "two", Status: model.StatusPending},
	}

	m.repo.EXPECT().GetDueNotifications(gomock.Any(), gomock.Any()).Return(due, nil)
	m.email.EXPECT().Send("a@example.com", "", "one", gomock.Nil()).Return("", errors.New("relay down"))
	m.repo.EXPECT().MarkFailed(gomock.Any(), due[0].ID, "relay down").Return(nil)
	m.sms.EXPECT().Send("+15551234567", "", "two", gomock.Nil()).Return("SM1", nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), due[1].ID, gomock.Any()).Return(nil)

	processed, err := svc.ProcessDue(context.Background(), strategy)
	assert.NoError(t, err)
	assert.Equal(t, 2, processed)
}

func TestService_ProcessDue_StoreError(t *testing.T) {
	svc, m := setupService(t, 1)

	storeErr := errors.New("connection refused")
	m.repo.EXPECT().GetDueNotifications(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := svc.ProcessDue(context.Background(), retry.Strategy{})
	assert.ErrorIs(t, err, storeErr)
}

func TestService_GetNotificationStatusByID_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, cacheMock, 1)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("sent", nil)

	status, err := svc.GetNotificationStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_GetNotificationStatusByID_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocknotificationRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock, 1)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetNotificationStatusByID(gomock.Any(), id).Return(model.StatusFailed, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), "failed").Return(nil)

	status, err := svc.GetNotificationStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusFailed, status)
}

func TestService_TemplateNames(t *testing.T) {
	svc, m := setupService(t, 1)

	m.email.EXPECT().TemplateNames().Return([]string{"orderUpdate", "welcome"})
	m.sms.EXPECT().TemplateNames().Return([]string{"orderUpdate", "verification", "welcome"})

	names := svc.TemplateNames()
	assert.Equal(t, []string{"orderUpdate", "welcome"}, names[model.ChannelEmail])
	assert.Equal(t, []string{"orderUpdate", "verification", "welcome"}, names[model.ChannelSMS])
}
