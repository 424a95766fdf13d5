// Package useragent provides utilities for parsing and analyzing HTTP User-Agent strings.
package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent contains the parsed information from a user agent string
type UserAgent struct {
	// Raw user agent string, lower-cased once at parse time
	userAgent string

	// Device information
	deviceType  string
	deviceModel string

	// Platform information
	os  string
	cpu string
}

// String returns the lower-cased user agent string
func (ua UserAgent) String() string { return ua.userAgent }

// UserAgent returns the lower-cased user agent string
func (ua UserAgent) UserAgent() string { return ua.userAgent }

// DeviceType returns the device type (mobile, tablet, desktop, bot, unknown)
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// DeviceModel returns the hardware family if available
func (ua UserAgent) DeviceModel() string { return ua.deviceModel }

// OS returns the operating system name
func (ua UserAgent) OS() string { return ua.os }

// CPU returns the CPU architecture, or empty string when unknown
func (ua UserAgent) CPU() string { return ua.cpu }

// IsMobile returns true if the user agent is a mobile device
func (ua UserAgent) IsMobile() bool { return ua.deviceType == DeviceTypeMobile }

// IsTablet returns true if the user agent is a tablet device
func (ua UserAgent) IsTablet() bool { return ua.deviceType == DeviceTypeTablet }

// IsDesktop returns true if the user agent is a desktop device
func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }

// IsBot returns true if the user agent is a bot
func (ua UserAgent) IsBot() bool { return ua.deviceType == DeviceTypeBot }

// IsUnknown returns true if the device type could not be determined
func (ua UserAgent) IsUnknown() bool {
	return ua.deviceType == DeviceTypeUnknown || ua.deviceType == ""
}

// titleCaser is safe for concurrent use
var titleCaser = cases.Title(language.English)

// Label returns a short human-readable identifier for logs and telemetry.
// Format: "Model DeviceType (OS)" with known parts title-cased, degrading
// to "Unknown device" when nothing was recognized.
func (ua UserAgent) Label() string {
	if ua.IsUnknown() && (ua.os == "" || ua.os == OSUnknown) {
		return "Unknown device"
	}

	osName := ua.os
	switch strings.ToLower(osName) {
	case "", OSUnknown:
		osName = "Unknown OS"
	case OSiOS:
		osName = "iOS"
	case OSMacOS:
		osName = "macOS"
	default:
		osName = titleCaser.String(osName)
	}

	if ua.deviceModel == "" || ua.deviceModel == ModelUnknown {
		return fmt.Sprintf("%s (%s)", titleCaser.String(ua.deviceType), osName)
	}

	return fmt.Sprintf("%s %s (%s)", titleCaser.String(ua.deviceModel), ua.deviceType, osName)
}

// Parse parses a user agent string and returns a UserAgent struct.
// The returned struct is always usable: unknown fields hold the
// corresponding *Unknown constants, so callers that only care about
// degrade-to-default behavior can ignore the error.
func Parse(ua string) (UserAgent, error) {
	if ua == "" {
		return New("", DeviceTypeUnknown, "", OSUnknown, CPUUnknown), ErrEmptyUserAgent
	}

	// Lower-case once; every downstream matcher expects lower-cased input
	lowerUA := strings.ToLower(ua)

	deviceType := ParseDeviceType(lowerUA)
	deviceModel := ParseDeviceModel(lowerUA, deviceType)
	os := ParseOS(lowerUA)
	cpu := ParseCPU(lowerUA)

	parsed := New(lowerUA, deviceType, deviceModel, os, cpu)

	if deviceType == DeviceTypeUnknown && os == OSUnknown {
		return parsed, ErrUnknownDevice
	}

	return parsed, nil
}

// New creates a new UserAgent with the provided parameters
func New(ua, deviceType, deviceModel, os, cpu string) UserAgent {
	return UserAgent{
		userAgent:   ua,
		deviceType:  deviceType,
		deviceModel: deviceModel,
		os:          os,
		cpu:         cpu,
	}
}
