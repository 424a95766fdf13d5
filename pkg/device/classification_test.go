package device_test

import (
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/device"

	"github.com/stretchr/testify/assert"
)

func TestClassificationDerivedFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		c        device.Classification
		orBoth   bool
		desktop  bool
		category device.Category
	}{
		{"mobile", device.Classification{Mobile: true}, true, false, device.CategoryMobile},
		{"tablet", device.Classification{Tablet: true}, true, false, device.CategoryTablet},
		{"neither", device.Classification{}, false, true, device.CategoryDesktop},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.orBoth, tc.c.MobileOrTablet())
			assert.Equal(t, tc.desktop, tc.c.Desktop())
			assert.Equal(t, tc.category, tc.c.Category())

			// MobileOrTablet and Desktop are exact complements.
			assert.Equal(t, !tc.c.MobileOrTablet(), tc.c.Desktop())
		})
	}
}
