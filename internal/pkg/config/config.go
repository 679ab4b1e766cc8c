package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, etc.)
// - default: Values common across all environments (timeouts, poll interval, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Monitor   MonitorConfig
	KeepAlive KeepAliveConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"4000"`
}

type DBConfig struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" required:"true"`
	Password     string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string        `envconfig:"DB_NAME" required:"true"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	QueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:4000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// MonitorConfig drives the change-detection poller and the presence
// classification shared by the poller and the request path.
type MonitorConfig struct {
	StalenessWindowMinutes int    `envconfig:"STALENESS_WINDOW" default:"5"`
	PollIntervalMillis     int    `envconfig:"POLL_INTERVAL" default:"10000"`
	ReportTimeZone         string `envconfig:"REPORT_TIMEZONE" default:"UTC"`
}

func (c MonitorConfig) StalenessWindow() time.Duration {
	return time.Duration(c.StalenessWindowMinutes) * time.Minute
}

func (c MonitorConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMillis) * time.Millisecond
}

// KeepAliveConfig enables the optional self-ping loop used on hosts that
// idle out inactive instances. Disabled when the URL is empty.
type KeepAliveConfig struct {
	SelfPingURL        string `envconfig:"SELF_PING_URL" default:""`
	PingIntervalMillis int    `envconfig:"PING_INTERVAL" default:"240000"`
}

func (c KeepAliveConfig) PingInterval() time.Duration {
	return time.Duration(c.PingIntervalMillis) * time.Millisecond
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
			Port: "4999", // Test port
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15432", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			QueryTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Monitor: MonitorConfig{
			StalenessWindowMinutes: 5,
			PollIntervalMillis:     10000,
			ReportTimeZone:         "UTC",
		},
	}
}
