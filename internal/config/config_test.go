package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Log("required variables are missing")
	{
		for _, name := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB"} {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}

		_, err := Build()
		require.Error(t, err, "postgres credentials are required")
	}

	t.Setenv("POSTGRES_USER", "test")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "customers")
	t.Setenv("REDIS_CUSTOMER_TTL", "1m")

	t.Log("defaults are applied")
	{
		cfg, err := Build()
		require.NoError(t, err)
		require.Equal(t, 3000, cfg.HTTPCfg.Port)
		require.Equal(t, time.Minute, cfg.RedisCfg.CustomerTTL)
		require.False(t, cfg.RedisCfg.Enabled)
		require.Equal(t, "user=test password=secret host=pg-customers port=5432 dbname=customers sslmode=disable pool_max_conns=100", cfg.PostgresCfg.DSN())
	}
}
