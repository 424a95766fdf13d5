package useragent

import (
	"strings"
)

// keywordSet optimizes substring lookups using map structure for O(1) iteration setup
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Keyword sets organized by device type. Bot detection covers social media
// crawlers and monitoring tools so they never end up classified as hardware.
var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "lighthouse", "slurp", "facebookexternalhit", "whatsapp", "telegram", "monitor", "validator", "fetcher", "scraper")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk", "playbook")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "ipod", "android", "windows phone", "iemobile", "blackberry", "opera mini")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "chromeos", "cros")

	samsungWords     = newKeywordSet("samsung", "sm-g", "sm-a", "sm-n", "samsungbrowser")
	samsungTabWords  = newKeywordSet("sm-t", "sm-x", "sm-p", "gt-p", "galaxy tab")
	kindleWords      = newKeywordSet("kindle", "silk", "kftt", "kfjwi", "kfmawi")
	kindleFirePrefix = "kf"
)

// ParseDeviceType classifies devices using fast string matching on an
// already lower-cased UA. Order matters: iOS identifiers are unambiguous
// and checked first, then bots, then the Android mobile/tablet split.
func ParseDeviceType(lowerUA string) string {
	if lowerUA == "" {
		return DeviceTypeUnknown
	}

	if strings.Contains(lowerUA, "ipad") {
		return DeviceTypeTablet
	}

	if strings.Contains(lowerUA, "iphone") || strings.Contains(lowerUA, "ipod") {
		return DeviceTypeMobile
	}

	if botKeywords.contains(lowerUA) {
		return DeviceTypeBot
	}

	// Android tablets omit the 'Mobile' token, unlike phones
	if strings.Contains(lowerUA, "android") {
		if samsungTabWords.contains(lowerUA) {
			return DeviceTypeTablet
		}
		if !strings.Contains(lowerUA, "mobile") {
			return DeviceTypeTablet
		}
		return DeviceTypeMobile
	}

	if tabletKeywords.contains(lowerUA) {
		return DeviceTypeTablet
	}

	if mobileKeywords.contains(lowerUA) {
		return DeviceTypeMobile
	}

	// Windows tablets need detection before the general desktop match
	if strings.Contains(lowerUA, "windows") &&
		(strings.Contains(lowerUA, "touch") || strings.Contains(lowerUA, "tablet")) {
		return DeviceTypeTablet
	}

	if desktopKeywords.contains(lowerUA) {
		return DeviceTypeDesktop
	}

	return DeviceTypeUnknown
}

// ParseDeviceModel identifies hardware families for mobile and tablet
// devices. Returns empty string for other device types since model
// detection isn't meaningful there.
func ParseDeviceModel(lowerUA, deviceType string) string {
	switch deviceType {
	case DeviceTypeMobile:
		if strings.Contains(lowerUA, "iphone") || strings.Contains(lowerUA, "ipod") {
			return ModelIPhone
		}
		if samsungWords.contains(lowerUA) {
			return ModelSamsung
		}
		if strings.Contains(lowerUA, "android") {
			return ModelAndroid
		}
		return ModelUnknown

	case DeviceTypeTablet:
		if strings.Contains(lowerUA, "ipad") {
			return ModelIPad
		}
		if strings.Contains(lowerUA, "windows") &&
			(strings.Contains(lowerUA, "touch") || strings.Contains(lowerUA, "tablet")) {
			return ModelSurface
		}
		if strings.Contains(lowerUA, "samsung") || samsungTabWords.contains(lowerUA) {
			return ModelSamsung
		}
		if kindleWords.contains(lowerUA) || HasKindleHardwareToken(lowerUA) {
			return ModelKindleFire
		}
		if strings.Contains(lowerUA, "android") {
			return ModelAndroid
		}
		return ModelUnknown
	}

	return ""
}

// HasKindleHardwareToken reports whether the UA carries an Amazon hardware
// identifier of the "KF" + letters family (KFTT, KFMAWI, ...). Fire tablets
// and tablet-like e-readers use these tokens without any "kindle" keyword.
func HasKindleHardwareToken(lowerUA string) bool {
	for i := 0; i+2 < len(lowerUA); i++ {
		if !strings.HasPrefix(lowerUA[i:], kindleFirePrefix) {
			continue
		}
		if i > 0 && isLetter(lowerUA[i-1]) {
			continue
		}
		// Require at least one trailing letter so plain "kf" doesn't match
		if isLetter(lowerUA[i+2]) {
			return true
		}
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
