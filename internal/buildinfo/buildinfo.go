// Package buildinfo carries version strings injected with -ldflags, e.g.
//
//	-ldflags "-X joyled/internal/buildinfo.Version=v0.3.0 -X joyled/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func set(v string, unset string) bool { return v != "" && v != unset }

// Short returns a compact build identifier for the window title and splash.
func Short() string {
	switch {
	case set(Version, "dev"):
		return Version
	case set(Commit, "unknown"):
		return Commit
	default:
		return "dev"
	}
}

// String is Short plus the commit when both are known, e.g. "v0.3.0+1a2b3c4".
// It stays short enough for one line of the boot splash.
func String() string {
	s := Short()
	if set(Version, "dev") && set(Commit, "unknown") {
		s += "+" + Commit
	}
	return s
}

// Long is String plus the build date when known, for the boot log.
func Long() string {
	s := String()
	if set(Date, "unknown") {
		s += " built " + Date
	}
	return s
}
