package device

import (
	"errors"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Breakpoints partition viewport widths into the three categories:
// width < MobileMax is phone-shaped, MobileMax <= width < TabletMax is
// tablet-shaped, anything wider is desktop-shaped.
type Breakpoints struct {
	MobileMax int `toml:"mobile_max"`
	TabletMax int `toml:"tablet_max"`
}

// Ruleset parameterizes the classification cascade. Keeping every keyword
// list and breakpoint in one place avoids the silent drift that creeps in
// when near-identical rule sets live in separate call sites.
type Ruleset struct {
	// MobileKeywords mark mobile browsers and devices in a raw UA.
	MobileKeywords []string `toml:"mobile_keywords"`

	// TabletKeywords mark tablet browsers and devices in a raw UA.
	TabletKeywords []string `toml:"tablet_keywords"`

	// TabletBrandPrefixes are hardware prefixes of known tablet families
	// (Samsung "SM-T"/"SM-X" and related). A brand match alone resolves to
	// tablet.
	TabletBrandPrefixes []string `toml:"tablet_brand_prefixes"`

	// TabletModelPrefixes are specific model-number prefixes inside a
	// matched brand family. They only sharpen the reported rule name for
	// telemetry; they never change the boolean outcome.
	TabletModelPrefixes []string `toml:"tablet_model_prefixes"`

	Breakpoints Breakpoints `toml:"breakpoints"`
}

// DefaultRules returns the built-in rule table.
func DefaultRules() Ruleset {
	return Ruleset{
		MobileKeywords: []string{
			"mobile", "iphone", "ipod", "android", "blackberry",
			"opera mini", "iemobile", "windows phone",
		},
		TabletKeywords: []string{
			"ipad", "playbook", "silk", "tablet", "kindle", "galaxy tab",
		},
		TabletBrandPrefixes: []string{"sm-t", "sm-x", "sm-p", "gt-p"},
		TabletModelPrefixes: []string{"sm-x70", "sm-x80"},
		Breakpoints: Breakpoints{
			MobileMax: 600,
			TabletMax: 1200,
		},
	}
}

// LoadRules reads TOML overrides on top of the defaults. Fields absent
// from the document keep their default values.
func LoadRules(r io.Reader) (Ruleset, error) {
	rules := DefaultRules()
	if _, err := toml.NewDecoder(r).Decode(&rules); err != nil {
		return Ruleset{}, errors.Join(ErrInvalidRules, err)
	}
	if err := rules.Validate(); err != nil {
		return Ruleset{}, err
	}
	return rules, nil
}

// Validate checks the breakpoint ordering the width partition relies on.
func (rs Ruleset) Validate() error {
	if rs.Breakpoints.MobileMax <= 0 || rs.Breakpoints.TabletMax <= rs.Breakpoints.MobileMax {
		return ErrInvalidRules
	}
	return nil
}

// matchAny reports whether the lower-cased UA contains any of the keywords.
// Empty keyword lists never match, so missing fields degrade cleanly.
func matchAny(lowerUA string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lowerUA, kw) {
			return true
		}
	}
	return false
}
