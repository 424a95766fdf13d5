package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("Windows desktop", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
		require.NoError(t, err)
		assert.Equal(t, useragent.DeviceTypeDesktop, ua.DeviceType())
		assert.Equal(t, useragent.OSWindows, ua.OS())
		assert.Equal(t, useragent.CPUAmd64, ua.CPU())
		assert.True(t, ua.IsDesktop())
		assert.False(t, ua.IsMobile())
		assert.False(t, ua.IsTablet())
	})

	t.Run("lower-cases raw string once", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) Mobile/15E148")
		require.NoError(t, err)
		assert.Equal(t, "mozilla/5.0 (iphone; cpu iphone os 14_4 like mac os x) mobile/15e148", ua.UserAgent())
		assert.Equal(t, useragent.OSiOS, ua.OS())
		assert.Equal(t, useragent.ModelIPhone, ua.DeviceModel())
		assert.True(t, ua.IsMobile())
	})

	t.Run("empty string degrades to unknown", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("")
		require.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
		assert.True(t, ua.IsUnknown())
		assert.Equal(t, useragent.OSUnknown, ua.OS())
		assert.Equal(t, useragent.CPUUnknown, ua.CPU())
	})

	t.Run("unrecognized string degrades to unknown", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("curl-ish gibberish nobody sends")
		require.ErrorIs(t, err, useragent.ErrUnknownDevice)
		assert.True(t, ua.IsUnknown())
	})

	t.Run("bot", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		require.NoError(t, err)
		assert.True(t, ua.IsBot())
	})
}

func TestLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "Samsung tablet",
			ua:       "mozilla/5.0 (linux; android 11; sm-t970) chrome/91.0.4472.120 safari/537.36",
			expected: "Samsung tablet (Android)",
		},
		{
			name:     "iPhone",
			ua:       "mozilla/5.0 (iphone; cpu iphone os 14_4 like mac os x) mobile/15e148 safari/604.1",
			expected: "Iphone mobile (iOS)",
		},
		{
			name:     "Windows desktop has no model",
			ua:       "mozilla/5.0 (windows nt 10.0; win64; x64) chrome/91.0.4472.124 safari/537.36",
			expected: "Desktop (Windows)",
		},
		{
			name:     "nothing recognized",
			ua:       "",
			expected: "Unknown device",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ua, _ := useragent.Parse(tc.ua)
			assert.Equal(t, tc.expected, ua.Label())
		})
	}
}
