package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sample = `
server:
  addr: ":9090"
scheduler:
  enabled: true
  type: fixed
  interval: 2m
  backfill: ["BZ=F"]
yahoo:
  latest_url: "http://localhost/quote?symbols=%s"
  retry:
    max_retries: 5
redis:
  enabled: true
  addr: "redis:6379"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, SchedulerFixed, cfg.Scheduler.Type)
	require.Equal(t, 2*time.Minute, cfg.Scheduler.Interval)
	require.Equal(t, []string{"BZ=F"}, cfg.Scheduler.Backfill)
	require.Equal(t, "USD", cfg.Scheduler.BackfillTarget)
	require.Equal(t, uint64(5), cfg.Yahoo.Retry.MaxRetries)
	require.Equal(t, 500*time.Millisecond, cfg.Yahoo.Retry.InitialInterval)
	require.Equal(t, "rates", cfg.Redis.Channel)
	require.Equal(t, 5432, cfg.Postgres.Port)
	require.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("SCHEDULER_TYPE", "random")
	t.Setenv("POSTGRES_HOST", "db")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	require.Equal(t, SchedulerRandom, cfg.Scheduler.Type)
	require.Equal(t, "db", cfg.Postgres.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "unknown scheduler type",
			cfg:  Config{Scheduler: SchedulerConfig{Enabled: true, Type: "cron"}},
			want: errSchedulerType,
		},
		{
			name: "fixed without url",
			cfg:  Config{Scheduler: SchedulerConfig{Enabled: true, Type: SchedulerFixed}},
			want: errYahooURL,
		},
		{
			name: "disabled scheduler skips checks",
			cfg:  Config{Scheduler: SchedulerConfig{Enabled: false, Type: "cron"}},
		},
		{
			name: "random needs no url",
			cfg:  Config{Scheduler: SchedulerConfig{Enabled: true, Type: SchedulerRandom}},
		},
		{
			name: "telegram without token",
			cfg:  Config{Telegram: TelegramConfig{Enabled: true}},
			want: errTelegramToken,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
