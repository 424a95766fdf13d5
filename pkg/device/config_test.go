package device_test

import (
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/device"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := device.DefaultConfig()
	assert.Equal(t, 600, cfg.MobileBreakpoint)
	assert.Equal(t, 1200, cfg.TabletBreakpoint)
	assert.Equal(t, 8, cfg.UpdateBuffer)
}

func TestLoadConfig(t *testing.T) {
	// t.Setenv forbids t.Parallel.

	t.Run("defaults without environment", func(t *testing.T) {
		cfg, err := device.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, device.DefaultConfig(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DEVICE_MOBILE_BREAKPOINT", "480")
		t.Setenv("DEVICE_TABLET_BREAKPOINT", "1024")

		cfg, err := device.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 480, cfg.MobileBreakpoint)
		assert.Equal(t, 1024, cfg.TabletBreakpoint)
	})

	t.Run("inverted breakpoints rejected", func(t *testing.T) {
		t.Setenv("DEVICE_MOBILE_BREAKPOINT", "1200")
		t.Setenv("DEVICE_TABLET_BREAKPOINT", "600")

		_, err := device.LoadConfig()
		assert.ErrorIs(t, err, device.ErrInvalidConfig)
	})

	t.Run("malformed value rejected", func(t *testing.T) {
		t.Setenv("DEVICE_MOBILE_BREAKPOINT", "not-a-number")

		_, err := device.LoadConfig()
		assert.ErrorIs(t, err, device.ErrInvalidConfig)
	})
}
