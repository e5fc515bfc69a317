package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notify-hub/internal/api/dto"
	"github.com/aliskhannn/notify-hub/internal/api/respond"
	"github.com/aliskhannn/notify-hub/internal/config"
	"github.com/aliskhannn/notify-hub/internal/model"
	notifrepo "github.com/aliskhannn/notify-hub/internal/repository/notification"
	"github.com/aliskhannn/notify-hub/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notifService interface {
	SubmitNotification(ctx context.Context, strategy retry.Strategy, in notification.SubmitInput) (model.Notification, error)
	SubmitBatch(ctx context.Context, strategy retry.Strategy, in notification.SubmitInput, recipients []string) []notification.BatchResult
	GetHistory(ctx context.Context, channel model.Channel, status model.Status, page, limit int) ([]model.Notification, int, error)
	GetNotificationStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
	TemplateNames() map[model.Channel][]string
}

type Handler struct {
	service   notifService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s notifService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// SendEmail handles POST /api/notify/email.
func (h *Handler) SendEmail(c *ginext.Context) {
	var req dto.SendEmailRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	scheduledAt, err := parseScheduledAt(req.ScheduledAt)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	h.submit(c, notification.SubmitInput{
		Channel:     model.ChannelEmail,
		Recipient:   req.Recipient,
		Subject:     req.Subject,
		Message:     req.Message,
		Template:    req.Template,
		Variables:   req.Variables,
		ScheduledAt: scheduledAt,
	})
}

// SendSMS handles POST /api/notify/sms.
func (h *Handler) SendSMS(c *ginext.Context) {
	var req dto.SendSMSRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	scheduledAt, err := parseScheduledAt(req.ScheduledAt)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	h.submit(c, notification.SubmitInput{
		Channel:     model.ChannelSMS,
		Recipient:   req.Recipient,
		Message:     req.Message,
		Template:    req.Template,
		Variables:   req.Variables,
		ScheduledAt: scheduledAt,
	})
}

func (h *Handler) submit(c *ginext.Context, in notification.SubmitInput) {
	n, err := h.service.SubmitNotification(c.Request.Context(), h.cfg.Retry, in)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", in.Recipient).Msg("failed to submit notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]interface{}{
		"notificationId": n.ID,
		"status":         n.Status,
	})
}

// SendBatch handles POST /api/notify/batch.
func (h *Handler) SendBatch(c *ginext.Context) {
	var req dto.SendBatchRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	results := h.service.SubmitBatch(c.Request.Context(), h.cfg.Retry, notification.SubmitInput{
		Channel:   model.Channel(req.Type),
		Subject:   req.Subject,
		Message:   req.Message,
		Template:  req.Template,
		Variables: req.Variables,
	}, req.Recipients)

	respond.OK(c.Writer, map[string]interface{}{"results": results})
}

// History handles GET /api/notify/history.
func (h *Handler) History(c *ginext.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	channel := model.Channel(c.Query("type"))
	if channel != "" && !channel.Valid() {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid type %q", channel))
		return
	}

	status := model.Status(c.Query("status"))

	notifications, total, err := h.service.GetHistory(c.Request.Context(), channel, status, page, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get notification history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if notifications == nil {
		notifications = []model.Notification{}
	}

	totalPages := (total + limit - 1) / limit

	respond.OK(c.Writer, map[string]interface{}{
		"notifications": notifications,
		"totalPages":    totalPages,
		"currentPage":   page,
		"total":         total,
	})
}

// Templates handles GET /api/notify/templates.
func (h *Handler) Templates(c *ginext.Context) {
	names := h.service.TemplateNames()

	respond.OK(c.Writer, map[string]interface{}{
		"email": names[model.ChannelEmail],
		"sms":   names[model.ChannelSMS],
	})
}

// GetStatus handles GET /api/notify/status/:id.
func (h *Handler) GetStatus(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetNotificationStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]interface{}{"status": status})
}

// Health handles GET /api/health. It has no dependency on core state.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, map[string]string{
		"status":  "OK",
		"message": "Notification system API is running",
	})
}

// parseScheduledAt parses an optional RFC 3339 timestamp; empty means now.
func parseScheduledAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid scheduledAt, expected RFC 3339 timestamp")
	}

	return parsed, nil
}

func queryInt(c *ginext.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}

	return v
}
