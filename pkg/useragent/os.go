package useragent

import (
	"strings"
)

// OS detection keyword sets ordered by typical web traffic patterns
var (
	windowsKeywords = newKeywordSet("windows")
	iOSKeywords     = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords   = newKeywordSet("macintosh", "mac os x")
	androidKeywords = newKeywordSet("android")
	fireOSKeywords  = newKeywordSet("kindle", "silk", "kftt")
	chromeOSKeyword = newKeywordSet("cros", "chromeos", "chrome os")
	linuxKeywords   = newKeywordSet("linux", "ubuntu", "debian", "fedora", "mint", "x11")
)

// ParseOS identifies the operating system using keyword matching on an
// already lower-cased UA. Windows dominates desktop traffic, so it goes
// first; Android must be checked before Linux because Android UAs carry
// a "linux" token too.
func ParseOS(lowerUA string) string {
	if lowerUA == "" {
		return OSUnknown
	}

	if windowsKeywords.contains(lowerUA) {
		if strings.Contains(lowerUA, "windows phone") {
			return OSWindowsPhone
		}
		return OSWindows
	}

	if iOSKeywords.contains(lowerUA) {
		return OSiOS
	}

	if macOSKeywords.contains(lowerUA) {
		return OSMacOS
	}

	if androidKeywords.contains(lowerUA) {
		return OSAndroid
	}

	if fireOSKeywords.contains(lowerUA) {
		return OSFireOS
	}

	if chromeOSKeyword.contains(lowerUA) {
		return OSChromeOS
	}

	if linuxKeywords.contains(lowerUA) {
		return OSLinux
	}

	return OSUnknown
}
