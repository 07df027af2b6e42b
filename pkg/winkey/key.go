package winkey

// Release identifies the Windows release a key belongs to.
type Release int

const (
	// ReleaseUnknown is the zero value; never produced by a successful validation.
	ReleaseUnknown Release = iota
	// ReleaseWindows95 covers the retail Windows 95 key format (DDD-DDDDDDD).
	ReleaseWindows95
	// ReleaseWindows95OEM is reserved; OEM key validation is not implemented yet.
	ReleaseWindows95OEM
	// ReleaseWindows98 is reserved; Windows 98 key validation is not implemented yet.
	ReleaseWindows98
)

// String returns a stable lowercase identifier suitable for output and logs.
func (r Release) String() string {
	switch r {
	case ReleaseWindows95:
		return "windows95"
	case ReleaseWindows95OEM:
		return "windows95-oem"
	case ReleaseWindows98:
		return "windows98"
	default:
		return "unknown"
	}
}

// Key is the result of a successful validation. It carries only the release
// the key was recognized as; the key text itself is not retained.
type Key struct {
	Release Release
}
