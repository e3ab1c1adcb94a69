package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Cookie   CookieConfig
	Log      LogConfig
	Admin    AdminConfig
	Notify   NotifyConfig
	Reminder ReminderConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" required:"true"`
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Tokyo"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// AdminConfig holds the operator credentials. PasswordHash (bcrypt) is the
// supported verification path; Password is a plain-text fallback kept only
// for installations that have not migrated yet. When both are set the hash
// wins.
//
// ADMIN_PASSWORD is deprecated: generate a digest and set
// ADMIN_PASSWORD_HASH instead.
type AdminConfig struct {
	Username     string        `envconfig:"ADMIN_USERNAME" required:"true"`
	PasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	Password     string        `envconfig:"ADMIN_PASSWORD"`
	SessionTTL   time.Duration `envconfig:"ADMIN_SESSION_TTL" default:"24h"`
}

// NotifyConfig configures outbound notification channels. A channel whose
// variables are unset is simply not constructed.
type NotifyConfig struct {
	SendGridAPIKey   string        `envconfig:"SENDGRID_API_KEY"`
	MailFrom         string        `envconfig:"MAIL_FROM"`
	MailTo           string        `envconfig:"MAIL_TO"`
	LineChannelToken string        `envconfig:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineUserID       string        `envconfig:"LINE_USER_ID"`
	Timeout          time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
}

type ReminderConfig struct {
	Enabled bool `envconfig:"REMINDER_ENABLED" default:"true"`
	Hour    int  `envconfig:"REMINDER_HOUR" default:"9"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			TimeZone: "Asia/Tokyo",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Admin: AdminConfig{
			Username:   "admin",
			Password:   "testpass",
			SessionTTL: 24 * time.Hour,
		},
		Reminder: ReminderConfig{
			Enabled: false,
			Hour:    9,
		},
	}
}
