package device

import (
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// Result is the raw classifier output. MobileDevice and TabletDevice are
// not guaranteed to be mutually exclusive: both can derive independently
// from heuristic matches (a device matching a mobile keyword and a tablet
// brand pattern at once). The Session resolves such conflicts with the
// viewport width as the final arbiter.
type Result struct {
	DefinitelyDesktop bool
	MobileDevice      bool
	TabletDevice      bool

	// Names of the first matching rule per step, for logs and telemetry.
	// Empty when the step matched nothing.
	DesktopRule string
	MobileRule  string
	TabletRule  string
}

// rule is one predicate→result pair of the ordered cascade. Rules are
// evaluated top to bottom with early exit, which keeps precedence
// auditable rule by rule.
type rule struct {
	name  string
	match func(Signals) bool
}

// Classifier maps collected signals to a tri-state category. It is a pure
// function of its inputs: no state, no side effects, never an error —
// absent or unknown fields behave as non-matches.
type Classifier struct {
	rules   Ruleset
	desktop []rule
	mobile  []rule
	tablet  []rule
}

// NewClassifier builds the rule cascade from the given rule table.
func NewClassifier(rules Ruleset) *Classifier {
	c := &Classifier{rules: rules}
	bp := rules.Breakpoints

	// Step 1: desktop determination. Any single match is decisive.
	// Desktop OS/architecture signals are high-confidence: touch-enabled
	// hybrids and narrow desktop windows must not land in mobile/tablet.
	c.desktop = []rule{
		{"windows-no-touch", func(s Signals) bool {
			return s.OSName == useragent.OSWindows && !strings.Contains(s.RawUserAgent, "touch")
		}},
		{"macos-no-touch", func(s Signals) bool {
			return s.OSName == useragent.OSMacOS && !s.TouchCapable
		}},
		{"linux-not-android", func(s Signals) bool {
			return s.OSName == useragent.OSLinux && !strings.Contains(s.RawUserAgent, "android")
		}},
		{"x86-64-architecture", func(s Signals) bool {
			return s.CPUArchitecture == useragent.CPUAmd64
		}},
	}

	// Step 2: mobile determination. Keyword and device-type checks precede
	// the pure width fallback so an unrecognized mobile OS still falls
	// through to the width heuristic.
	c.mobile = []rule{
		{"device-type-mobile", func(s Signals) bool {
			return s.DeviceType == useragent.DeviceTypeMobile
		}},
		{"mobile-keyword", func(s Signals) bool {
			return matchAny(s.RawUserAgent, rules.MobileKeywords)
		}},
		{"android-narrow-viewport", func(s Signals) bool {
			return s.OSName == useragent.OSAndroid && s.ViewportWidth < bp.MobileMax
		}},
		{"ios-not-ipad", func(s Signals) bool {
			return s.OSName == useragent.OSiOS && !strings.Contains(s.RawUserAgent, "ipad")
		}},
		{"narrow-viewport", func(s Signals) bool {
			return s.ViewportWidth < bp.MobileMax
		}},
	}

	// Step 3: tablet determination. Brand and hardware patterns resolve to
	// tablet independent of width; the width range is the last resort.
	c.tablet = []rule{
		{"device-type-tablet", func(s Signals) bool {
			return s.DeviceType == useragent.DeviceTypeTablet
		}},
		{"tablet-brand", func(s Signals) bool {
			return matchAny(s.RawUserAgent, rules.TabletBrandPrefixes)
		}},
		{"e-reader-hardware", func(s Signals) bool {
			return useragent.HasKindleHardwareToken(s.RawUserAgent)
		}},
		{"tablet-keyword", func(s Signals) bool {
			return matchAny(s.RawUserAgent, rules.TabletKeywords)
		}},
		{"android-mid-viewport", func(s Signals) bool {
			return s.OSName == useragent.OSAndroid &&
				s.ViewportWidth >= bp.MobileMax && s.ViewportWidth < bp.TabletMax
		}},
		{"ios-ipad", func(s Signals) bool {
			return s.OSName == useragent.OSiOS && strings.Contains(s.RawUserAgent, "ipad")
		}},
		{"windows-touch", func(s Signals) bool {
			return s.OSName == useragent.OSWindows && strings.Contains(s.RawUserAgent, "touch")
		}},
		{"mid-viewport", func(s Signals) bool {
			return s.ViewportWidth >= bp.MobileMax && s.ViewportWidth < bp.TabletMax
		}},
	}

	return c
}

// Classify runs the three-step cascade over a signals snapshot.
func (c *Classifier) Classify(s Signals) Result {
	var res Result

	res.DesktopRule, res.DefinitelyDesktop = evaluate(c.desktop, s)
	if res.DefinitelyDesktop {
		// Desktop short-circuits everything else.
		return res
	}

	res.MobileRule, res.MobileDevice = evaluate(c.mobile, s)
	res.TabletRule, res.TabletDevice = evaluate(c.tablet, s)

	// A known model number inside a matched brand family sharpens the
	// telemetry label but never changes the outcome.
	if res.TabletRule == "tablet-brand" && matchAny(s.RawUserAgent, c.rules.TabletModelPrefixes) {
		res.TabletRule = "tablet-brand-model"
	}

	return res
}

// Rules returns the rule table the classifier was built from.
func (c *Classifier) Rules() Ruleset { return c.rules }

func evaluate(rules []rule, s Signals) (string, bool) {
	for _, r := range rules {
		if r.match(s) {
			return r.name, true
		}
	}
	return "", false
}
