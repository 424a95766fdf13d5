package device

import (
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// TouchSupport carries the environment's touch-capability indicators.
// Hosts expose up to three of them: a touch-event support flag, a
// max-touch-points counter, and a legacy vendor-prefixed counter.
type TouchSupport struct {
	Events           bool
	MaxTouchPoints   int
	MSMaxTouchPoints int
}

// Capable reports whether any indicator is positive. Indicators that the
// host does not support arrive as false/0 and simply don't count.
func (t TouchSupport) Capable() bool {
	return t.Events || t.MaxTouchPoints > 0 || t.MSMaxTouchPoints > 0
}

// Source abstracts the environment queries the collector reads on every
// evaluation. Implementations must not fail: unsupported queries return
// zero values.
type Source interface {
	// UserAgent returns the raw user agent string.
	UserAgent() string

	// ViewportSize returns the current viewport width and height in
	// device-independent pixels.
	ViewportSize() (width, height int)

	// TouchSupport returns the touch-capability indicators.
	TouchSupport() TouchSupport
}

// Signals is a snapshot of the environment collected once per evaluation.
// It is immutable for that evaluation; every trigger produces a fresh one.
type Signals struct {
	DeviceType      string
	OSName          string
	CPUArchitecture string
	RawUserAgent    string // lower-cased
	TouchCapable    bool
	ViewportWidth   int
	ViewportHeight  int
}

// Collect produces a fresh Signals snapshot from src. Every call re-reads
// live state; there is no caching. Parse failures degrade to unknown
// fields, never to an error: downstream rules treat unknowns as
// non-matching.
func Collect(src Source) Signals {
	raw := src.UserAgent()
	ua, _ := useragent.Parse(raw)
	width, height := src.ViewportSize()

	return Signals{
		DeviceType:      ua.DeviceType(),
		OSName:          ua.OS(),
		CPUArchitecture: ua.CPU(),
		RawUserAgent:    strings.ToLower(raw),
		TouchCapable:    src.TouchSupport().Capable(),
		ViewportWidth:   width,
		ViewportHeight:  height,
	}
}
