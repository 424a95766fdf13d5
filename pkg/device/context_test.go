package device_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/device"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		want := device.Classification{Tablet: true}
		ctx := device.WithContext(context.Background(), want)

		got, ok := device.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		_, ok := device.FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		_, ok := device.FromContext(nil) //nolint:staticcheck // exercising the nil guard
		assert.False(t, ok)
	})
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	extract := device.LogExtractor()

	ctx := device.WithContext(context.Background(), device.Classification{Mobile: true})
	attr, ok := extract(ctx)
	require.True(t, ok)
	assert.Equal(t, "device_category", attr.Key)
	assert.Equal(t, "mobile", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
