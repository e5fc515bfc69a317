package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server    Server         `mapstructure:"server"`
	Database  Database       `mapstructure:"database"`
	Redis     Redis          `mapstructure:"redis"`
	Email     Email          `mapstructure:"email"`
	SMS       SMS            `mapstructure:"sms"`
	Scheduler Scheduler      `mapstructure:"scheduler"`
	Batch     Batch          `mapstructure:"batch"`
	Retry     retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Database holds database master and slave configuration.
type Database struct {
	Master DatabaseNode   `mapstructure:"master"`
	Slaves []DatabaseNode `mapstructure:"slaves"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DatabaseNode holds connection parameters for a single database node.
type DatabaseNode struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Name    string `mapstructure:"name"`
	SSLMode string `mapstructure:"ssl_mode"`
}

// Redis holds Redis connection parameters.
type Redis struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// Email holds SMTP configuration for the email channel.
type Email struct {
	SMTPHost string        `mapstructure:"smtp_host"`
	SMTPPort string        `mapstructure:"smtp_port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	From     string        `mapstructure:"from"`
	Timeout  time.Duration `mapstructure:"timeout"` // bound on one dial-and-send
}

// SMS holds Twilio configuration for the sms channel.
type SMS struct {
	AccountSID string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	From       string        `mapstructure:"from"` // sending phone number
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Scheduler holds the delivery poller configuration.
type Scheduler struct {
	PollInterval time.Duration `mapstructure:"poll_interval"` // time between delivery passes
}

// Batch holds batch fan-out configuration.
type Batch struct {
	Concurrency int `mapstructure:"concurrency"` // max simultaneous sends per batch
}

// DSN returns the PostgreSQL DSN string for connecting to this database node.
func (n DatabaseNode) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		n.User, n.Pass, n.Host, n.Port, n.Name, n.SSLMode,
	)
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"server.http_port": "HTTP_PORT",

		"database.master.host": "DB_HOST",
		"database.master.port": "DB_PORT",
		"database.master.user": "DB_USER",
		"database.master.pass": "DB_PASSWORD",
		"database.master.name": "DB_NAME",

		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.database": "REDIS_DATABASE",

		"email.smtp_host": "SMTP_HOST",
		"email.smtp_port": "SMTP_PORT",
		"email.username":  "SMTP_USER",
		"email.password":  "SMTP_PASS",
		"email.from":      "SMTP_FROM",

		"sms.account_sid": "TWILIO_ACCOUNT_SID",
		"sms.auth_token":  "TWILIO_AUTH_TOKEN",
		"sms.from":        "TWILIO_PHONE_NUMBER",

		"scheduler.poll_interval": "POLL_INTERVAL",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	if cfg.Scheduler.PollInterval <= 0 {
		cfg.Scheduler.PollInterval = time.Minute
	}
	if cfg.Batch.Concurrency <= 0 {
		cfg.Batch.Concurrency = 10
	}

	return &cfg
}
