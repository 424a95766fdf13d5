// Package useragent provides fast and memory-efficient parsing of HTTP
// User-Agent strings into the fields the device classifier consumes.
//
// It identifies:
//   - Device type – mobile, tablet, desktop, bot or unknown
//   - Device model – iPhone, iPad, Samsung, Kindle Fire, Surface (when available)
//   - Operating system – Windows, macOS, iOS, Android, Linux, ChromeOS, FireOS
//   - CPU architecture – amd64, x86, arm, arm64 (when the UA carries a token)
//
// Parsing is performed with plain-string look-ups – no regular expressions
// and no dependency on the upstream Chromium UA-parser – which keeps
// allocations low and makes the package suitable for per-event re-evaluation.
//
// # Architecture
//
// The high-level entry point is Parse, which lower-cases the input once and
// orchestrates dedicated parsers for device type (device.go), operating
// system (os.go) and CPU architecture (cpu.go). Each parser relies on
// curated keyword sets. Public string enumerations reside in constants.go.
//
// # Usage
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//	    // ErrEmptyUserAgent / ErrUnknownDevice – the returned struct is
//	    // still usable; unknown fields hold the *Unknown constants.
//	}
//
//	if ua.DeviceType() == useragent.DeviceTypeTablet {
//	    // serve tablet layout
//	}
//
// # Error Handling
//
// Parse returns sentinel errors (ErrEmptyUserAgent, ErrUnknownDevice)
// comparable with errors.Is. Errors signal reduced confidence rather than
// failure: every field of the returned UserAgent is always populated with
// either a recognized value or the corresponding *Unknown constant.
package useragent
