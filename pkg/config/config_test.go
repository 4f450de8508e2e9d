package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sententiaregum/flux-container/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("it should apply defaults without a .env file", func(t *testing.T) {
		cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "flux-container", cfg.Relay.Channel)
		assert.True(t, cfg.IsLocal())
	})

	t.Run("it should read values from a .env file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(file, []byte("PORT=9090\nRELAY_EVENTS=SAVED,DELETED\nAPP_ENV=production\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("PORT")
			os.Unsetenv("RELAY_EVENTS")
			os.Unsetenv("APP_ENV")
		})

		cfg, err := config.LoadConfig(file)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, []string{"SAVED", "DELETED"}, cfg.Relay.Events)
		assert.False(t, cfg.IsLocal())
	})

	t.Run("it should fail on malformed values", func(t *testing.T) {
		t.Setenv("PORT", "not-a-number")

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}
