package db

import (
	"testing"

	"github.com/NastyaGoryachaya/trading-service/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestDSN_Parsable(t *testing.T) {
	t.Parallel()

	cfg := &config.PostgresConfig{
		Host: "db", Port: 6543, User: "trader", Password: "secret", DBName: "trading", SSLMode: "disable",
	}
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	require.NoError(t, err)
	require.Equal(t, "db", poolCfg.ConnConfig.Host)
	require.Equal(t, uint16(6543), poolCfg.ConnConfig.Port)
	require.Equal(t, "trader", poolCfg.ConnConfig.User)
	require.Equal(t, "trading", poolCfg.ConnConfig.Database)
}
