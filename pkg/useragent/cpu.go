package useragent

// CPU architecture keyword sets. 64-bit x86 tokens appear in desktop UAs
// only, which makes the architecture a high-confidence desktop signal.
var (
	amd64Keywords = newKeywordSet("x86_64", "x86-64", "amd64", "win64", "wow64", "x64;")
	arm64Keywords = newKeywordSet("aarch64", "arm64", "arm_64")
	armKeywords   = newKeywordSet("armv7", "armv8", "arm;", "arm)")
	x86Keywords   = newKeywordSet("i686", "i586", "i386", "x86;")
)

// ParseCPU identifies the CPU architecture from an already lower-cased UA.
// Returns CPUUnknown (empty string) when no architecture token is present,
// which is the common case for mobile UAs.
func ParseCPU(lowerUA string) string {
	if lowerUA == "" {
		return CPUUnknown
	}

	if amd64Keywords.contains(lowerUA) {
		return CPUAmd64
	}

	if arm64Keywords.contains(lowerUA) {
		return CPUARM64
	}

	if armKeywords.contains(lowerUA) {
		return CPUARM
	}

	if x86Keywords.contains(lowerUA) {
		return CPUx86
	}

	// "Intel Mac OS X" is NOT an architecture token: Safari reports it on
	// Apple Silicon too, and an iPad requesting the desktop site carries the
	// exact same string. Inferring amd64 from it would mark touch-capable
	// Mac UAs as desktop hardware.
	return CPUUnknown
}
