package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notify-hub/internal/api/handlers/notification"
	"github.com/aliskhannn/notify-hub/internal/api/router"
	"github.com/aliskhannn/notify-hub/internal/api/server"
	"github.com/aliskhannn/notify-hub/internal/config"
	"github.com/aliskhannn/notify-hub/internal/model"
	notifrepo "github.com/aliskhannn/notify-hub/internal/repository/notification"
	"github.com/aliskhannn/notify-hub/internal/sender"
	notifsvc "github.com/aliskhannn/notify-hub/internal/service/notification"
	"github.com/aliskhannn/notify-hub/internal/worker"
	"github.com/aliskhannn/notify-hub/pkg/email"
	"github.com/aliskhannn/notify-hub/pkg/sms"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	repo := notifrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Timeout,
	)
	smsClient := sms.NewClient(
		cfg.SMS.AccountSID,
		cfg.SMS.AuthToken,
		cfg.SMS.From,
		cfg.SMS.Timeout,
	)

	senders := map[model.Channel]notifsvc.ChannelSender{
		model.ChannelEmail: sender.NewEmail(emailClient),
		model.ChannelSMS:   sender.NewSMS(smsClient),
	}

	service := notifsvc.NewService(repo, senders, rdb, cfg.Batch.Concurrency)
	notifHandler := notification.NewHandler(service, val, cfg)

	poller := worker.NewPoller(service, cfg.Scheduler.PollInterval)

	go poller.Run(ctx, cfg.Retry)

	r := router.New(notifHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
