package device_test

import (
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDesktopDominance(t *testing.T) {
	t.Parallel()

	// Any single desktop heuristic match must force {false,false} no
	// matter what the remaining fields claim.
	tests := []struct {
		name    string
		signals device.Signals
		rule    string
	}{
		{
			name: "windows without touch, narrow viewport",
			signals: device.Signals{
				DeviceType:    useragent.DeviceTypeDesktop,
				OSName:        useragent.OSWindows,
				RawUserAgent:  "mozilla/5.0 (windows nt 10.0; win64; x64) chrome/120.0.0.0",
				ViewportWidth: 320,
			},
			rule: "windows-no-touch",
		},
		{
			name: "macos without touch capability",
			signals: device.Signals{
				OSName:        useragent.OSMacOS,
				RawUserAgent:  "mozilla/5.0 (macintosh; intel mac os x 10_15_7) safari/605.1.15",
				TouchCapable:  false,
				ViewportWidth: 500,
			},
			rule: "macos-no-touch",
		},
		{
			name: "linux without android token",
			signals: device.Signals{
				OSName:        useragent.OSLinux,
				RawUserAgent:  "mozilla/5.0 (x11; linux) firefox/120.0",
				ViewportWidth: 400,
			},
			rule: "linux-not-android",
		},
		{
			name: "amd64 architecture overrides mobile device type",
			signals: device.Signals{
				DeviceType:      useragent.DeviceTypeMobile,
				CPUArchitecture: useragent.CPUAmd64,
				RawUserAgent:    "mobile iphone android", // every mobile keyword at once
				TouchCapable:    true,
				ViewportWidth:   320,
			},
			rule: "x86-64-architecture",
		},
	}

	c := device.NewClassifier(device.DefaultRules())

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := c.Classify(tc.signals)
			assert.True(t, res.DefinitelyDesktop)
			assert.Equal(t, tc.rule, res.DesktopRule)
			assert.False(t, res.MobileDevice, "desktop must short-circuit mobile")
			assert.False(t, res.TabletDevice, "desktop must short-circuit tablet")
		})
	}
}

func TestClassifyMacTouchHybridNotDesktop(t *testing.T) {
	t.Parallel()

	// An iPad requesting the desktop site presents a plain Mac UA but is
	// touch-capable. Touch must disarm the macOS desktop rule, and the UA
	// string alone must not imply x86_64 hardware.
	signals := device.Signals{
		DeviceType:      useragent.DeviceTypeDesktop,
		OSName:          useragent.OSMacOS,
		CPUArchitecture: useragent.ParseCPU("mozilla/5.0 (macintosh; intel mac os x 10_15_7) version/16.6 safari/605.1.15"),
		RawUserAgent:    "mozilla/5.0 (macintosh; intel mac os x 10_15_7) version/16.6 safari/605.1.15",
		TouchCapable:    true,
		ViewportWidth:   1024,
	}

	res := device.NewClassifier(device.DefaultRules()).Classify(signals)
	assert.False(t, res.DefinitelyDesktop, "touch-capable Mac UA must not be desktop-determined")
	assert.True(t, res.TabletDevice)
	assert.Equal(t, "mid-viewport", res.TabletRule)
}

func TestClassifyMobileRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		signals device.Signals
		mobile  bool
		rule    string
	}{
		{
			name: "parsed device type",
			signals: device.Signals{
				DeviceType:    useragent.DeviceTypeMobile,
				RawUserAgent:  "something unusual",
				ViewportWidth: 1400,
			},
			mobile: true,
			rule:   "device-type-mobile",
		},
		{
			name: "keyword match on wide viewport",
			signals: device.Signals{
				RawUserAgent:  "mozilla/5.0 (blackberry; u; blackberry 9900)",
				ViewportWidth: 1400,
			},
			mobile: true,
			rule:   "mobile-keyword",
		},
		{
			name: "ios without ipad token",
			signals: device.Signals{
				DeviceType:    useragent.DeviceTypeUnknown,
				OSName:        useragent.OSiOS,
				RawUserAgent:  "some ios agent without the obvious tokens",
				ViewportWidth: 1400,
			},
			mobile: true,
			rule:   "ios-not-ipad",
		},
		{
			name: "unrecognized os falls through to narrow width",
			signals: device.Signals{
				RawUserAgent:  "entirely unknown agent",
				ViewportWidth: 480,
			},
			mobile: true,
			rule:   "narrow-viewport",
		},
		{
			name: "unrecognized os on wide viewport is not mobile",
			signals: device.Signals{
				RawUserAgent:  "entirely unknown agent",
				ViewportWidth: 900,
			},
			mobile: false,
		},
	}

	c := device.NewClassifier(device.DefaultRules())

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := c.Classify(tc.signals)
			assert.False(t, res.DefinitelyDesktop)
			assert.Equal(t, tc.mobile, res.MobileDevice)
			assert.Equal(t, tc.rule, res.MobileRule)
		})
	}
}

func TestClassifyTabletRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		signals device.Signals
		tablet  bool
		rule    string
	}{
		{
			name: "parsed device type",
			signals: device.Signals{
				DeviceType:    useragent.DeviceTypeTablet,
				RawUserAgent:  "something unusual",
				ViewportWidth: 1400,
			},
			tablet: true,
			rule:   "device-type-tablet",
		},
		{
			name: "samsung brand prefix",
			signals: device.Signals{
				RawUserAgent:  "custom agent sm-t970 build",
				ViewportWidth: 1400,
			},
			tablet: true,
			rule:   "tablet-brand",
		},
		{
			name: "samsung model prefix narrows the rule name only",
			signals: device.Signals{
				RawUserAgent:  "custom agent sm-x706b build",
				ViewportWidth: 1400,
			},
			tablet: true,
			rule:   "tablet-brand-model",
		},
		{
			name: "e-reader hardware token at narrow width",
			signals: device.Signals{
				RawUserAgent:  "custom silk-less agent kfsnwi build",
				ViewportWidth: 320,
			},
			tablet: true,
			rule:   "e-reader-hardware",
		},
		{
			name: "windows with touch token",
			signals: device.Signals{
				OSName:        useragent.OSWindows,
				RawUserAgent:  "mozilla/5.0 (windows nt 10.0; arm; touch)",
				TouchCapable:  true,
				ViewportWidth: 1400,
			},
			tablet: true,
			rule:   "windows-touch",
		},
		{
			name: "unrecognized agent falls through to mid width",
			signals: device.Signals{
				RawUserAgent:  "entirely unknown agent",
				ViewportWidth: 800,
			},
			tablet: true,
			rule:   "mid-viewport",
		},
		{
			name: "unrecognized agent on wide viewport is not tablet",
			signals: device.Signals{
				RawUserAgent:  "entirely unknown agent",
				ViewportWidth: 1300,
			},
			tablet: false,
		},
	}

	c := device.NewClassifier(device.DefaultRules())

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := c.Classify(tc.signals)
			assert.False(t, res.DefinitelyDesktop)
			assert.Equal(t, tc.tablet, res.TabletDevice)
			assert.Equal(t, tc.rule, res.TabletRule)
		})
	}
}

func TestClassifyNeverPanicsOnEmptySignals(t *testing.T) {
	t.Parallel()

	c := device.NewClassifier(device.DefaultRules())
	res := c.Classify(device.Signals{})

	// Zero width counts as narrow, everything else is a non-match.
	assert.False(t, res.DefinitelyDesktop)
	assert.True(t, res.MobileDevice)
	assert.Equal(t, "narrow-viewport", res.MobileRule)
	assert.False(t, res.TabletDevice)
}

func TestClassifyBothFlagsCanHold(t *testing.T) {
	t.Parallel()

	// A Kindle UA matches the "android" mobile keyword and the tablet
	// device type at once. The raw classifier reports both; the session
	// resolves the conflict by width.
	signals := device.Signals{
		DeviceType:    useragent.DeviceTypeTablet,
		OSName:        useragent.OSAndroid,
		RawUserAgent:  "mozilla/5.0 (linux; android 9; kfmawi) silk/95.3.72",
		TouchCapable:  true,
		ViewportWidth: 320,
	}

	res := device.NewClassifier(device.DefaultRules()).Classify(signals)
	assert.True(t, res.MobileDevice)
	assert.True(t, res.TabletDevice)
}
