package config

import (
	"log/slog"
	"testing"

	utils "github.com/minaorangina/cribbage/internal"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		t.Setenv("CRIBBAGE_ADDR", "")
		t.Setenv("CRIBBAGE_SEED", "")
		t.Setenv("CRIBBAGE_LOG_LEVEL", "")
		t.Setenv("CRIBBAGE_ALLOWED_ORIGINS", "")

		cfg, err := Load()
		require.NoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":8000")
		utils.AssertEqual(t, cfg.Seed, int64(0))
		utils.AssertEqual(t, cfg.LogLevel, "info")
		utils.AssertDeepEqual(t, cfg.Origins(), []string{"*"})
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("CRIBBAGE_ADDR", ":9090")
		t.Setenv("CRIBBAGE_SEED", "42")
		t.Setenv("CRIBBAGE_LOG_LEVEL", "debug")
		t.Setenv("CRIBBAGE_ALLOWED_ORIGINS", "http://a.test, http://b.test")

		cfg, err := Load()
		require.NoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":9090")
		utils.AssertEqual(t, cfg.Seed, int64(42))
		utils.AssertDeepEqual(t, cfg.Origins(), []string{"http://a.test", "http://b.test"})

		level, err := cfg.Level()
		require.NoError(t, err)
		utils.AssertEqual(t, level, slog.LevelDebug)
	})

	t.Run("rejects unknown log levels", func(t *testing.T) {
		t.Setenv("CRIBBAGE_LOG_LEVEL", "chatty")

		_, err := Load()
		utils.AssertErrorIs(t, err, ErrInvalidLogLevel)
	})
}
