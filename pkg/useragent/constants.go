package useragent

// Device types represent the category of device behind a user agent string.
const (
	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop = "desktop"

	// DeviceTypeBot identifies automated crawlers, bots, and spiders
	DeviceTypeBot = "bot"

	// DeviceTypeUnknown is used when the device type cannot be determined
	DeviceTypeUnknown = "unknown"
)

// Device model identifiers for mobile and tablet hardware.
// Model detection never changes classification outcomes; it only
// sharpens log and telemetry labels.
const (
	// ModelIPhone identifies Apple iPhone devices
	ModelIPhone = "iphone"

	// ModelIPad identifies Apple iPad tablets
	ModelIPad = "ipad"

	// ModelSamsung identifies Samsung phones and Galaxy Tab tablets
	ModelSamsung = "samsung"

	// ModelKindleFire identifies Amazon Fire tablets and e-readers
	ModelKindleFire = "kindle"

	// ModelSurface identifies Microsoft Surface tablets
	ModelSurface = "surface"

	// ModelAndroid identifies generic Android hardware
	ModelAndroid = "android"

	// ModelUnknown is used when the model cannot be determined
	ModelUnknown = "unknown"
)

// Operating system identifiers
const (
	// OSWindows identifies Microsoft Windows operating system
	OSWindows = "windows"

	// OSWindowsPhone identifies Microsoft Windows Phone operating system
	OSWindowsPhone = "windows phone"

	// OSMacOS identifies Apple macOS operating system
	OSMacOS = "mac os"

	// OSiOS identifies Apple iOS mobile operating system
	OSiOS = "ios"

	// OSAndroid identifies Google Android operating system
	OSAndroid = "android"

	// OSLinux identifies Linux-based operating systems
	OSLinux = "linux"

	// OSChromeOS identifies Google Chrome OS operating system
	OSChromeOS = "chromeos"

	// OSFireOS identifies Amazon Fire OS operating system
	OSFireOS = "fireos"

	// OSUnknown is used when the operating system cannot be determined
	OSUnknown = "unknown"
)

// CPU architecture identifiers
const (
	// CPUAmd64 identifies 64-bit x86 processors ("amd64", "x86_64", "x64", "wow64")
	CPUAmd64 = "amd64"

	// CPUx86 identifies 32-bit x86 processors
	CPUx86 = "x86"

	// CPUARM64 identifies 64-bit ARM processors
	CPUARM64 = "arm64"

	// CPUARM identifies 32-bit ARM processors
	CPUARM = "arm"

	// CPUUnknown is used when the architecture cannot be determined
	CPUUnknown = ""
)
