package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

const (
	SchedulerFixed  = "fixed"
	SchedulerRandom = "random"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Yahoo     YahooConfig     `yaml:"yahoo"`
	Redis     RedisConfig     `yaml:"redis"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"SERVER_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"5s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env-default:"3s"`
}

type SchedulerConfig struct {
	Enabled        bool          `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"true"`
	Type           string        `yaml:"type" env:"SCHEDULER_TYPE" env-default:"fixed"` // fixed|random
	Interval       time.Duration `yaml:"interval" env-default:"1m"`
	RandomInterval time.Duration `yaml:"random_interval" env-default:"5s"`
	RunTimeout     time.Duration `yaml:"run_timeout" env-default:"30s"`
	// Backfill - коды символов, для которых при старте загружается история
	Backfill       []string `yaml:"backfill"`
	BackfillTarget string   `yaml:"backfill_target" env-default:"USD"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"text"`                // text|json
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"trading"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type YahooConfig struct {
	LatestURL  string        `yaml:"latest_url" env:"YAHOO_LATEST_URL"`
	HistoryURL string        `yaml:"history_url" env:"YAHOO_HISTORY_URL"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent  string        `yaml:"user_agent" env-default:"trading-service/1.0"`
	Retry      RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxRetries      uint64        `yaml:"max_retries" env-default:"3"`
	InitialInterval time.Duration `yaml:"initial_interval" env-default:"500ms"`
	MaxInterval     time.Duration `yaml:"max_interval" env-default:"5s"`
}

type RedisConfig struct {
	Enabled  bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env-default:"10m"`
	Channel  string        `yaml:"channel" env-default:"rates"`
}

type TelegramConfig struct {
	Enabled             bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token               string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	DefaultAutoInterval int    `yaml:"default_auto_interval" env-default:"10"` // minutes
}

var (
	errSchedulerType = errors.New("scheduler.type must be fixed or random")
	errYahooURL      = errors.New("yahoo.latest_url is required for fixed scheduler")
	errTelegramToken = errors.New("telegram.token is required when telegram is enabled")
)

func LoadConfig() (*Config, error) {
	return Load(fetchConfigPath())
}

// Load - читает конфиг из файла path (если задан) и переменных окружения.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scheduler.Enabled {
		switch c.Scheduler.Type {
		case SchedulerFixed:
			if c.Yahoo.LatestURL == "" {
				return errYahooURL
			}
		case SchedulerRandom:
		default:
			return fmt.Errorf("%w, got %q", errSchedulerType, c.Scheduler.Type)
		}
	}
	if c.Telegram.Enabled && c.Telegram.Token == "" {
		return errTelegramToken
	}
	return nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
