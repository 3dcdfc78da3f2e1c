package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
)

const Header = "X-Client-Version"

const versionDevel = "devel"

// version is set via ldflags at build time.
// falls back to debug.ReadBuildInfo for go install.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// Short trims the leading "v" and any build metadata, for display.
func Short(v string) string {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	return v
}

// IsDevelopment reports versions that are never compared against releases.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == "unknown" || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

// IsNewer reports whether latest is a higher release than current.
func IsNewer(current, latest string) bool {
	if IsDevelopment(current) {
		return false
	}
	cur, ok := parseSemver(current)
	if !ok {
		return false
	}
	lat, ok := parseSemver(latest)
	if !ok {
		return false
	}
	for i := range cur {
		if lat[i] != cur[i] {
			return lat[i] > cur[i]
		}
	}
	return false
}

func parseSemver(v string) ([3]int, bool) {
	var out [3]int
	v = Short(v)
	if i := strings.IndexByte(v, '-'); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// ParseMajor extracts the major version number from a semver string.
// Returns "0" for unparseable versions.
func ParseMajor(v string) string {
	v = strings.TrimPrefix(v, "v")
	if idx := strings.Index(v, "."); idx > 0 {
		return v[:idx]
	}
	return "0"
}

// IncompatibleError reports a client whose major version differs from the
// server's.
type IncompatibleError struct {
	ClientVersion string
	ServerVersion string
	MinVersion    string
}

func (e IncompatibleError) Error() string {
	return fmt.Sprintf("client version %s incompatible with server version %s (requires v%s.x)",
		e.ClientVersion, e.ServerVersion, e.MinVersion)
}

// CheckCompatibility requires client and server to share a major version.
// Development builds on either side always pass.
func CheckCompatibility(clientVersion, serverVersion string) *IncompatibleError {
	if IsDevelopment(clientVersion) || IsDevelopment(serverVersion) {
		return nil
	}

	serverMajor := ParseMajor(serverVersion)
	if ParseMajor(clientVersion) == serverMajor {
		return nil
	}

	return &IncompatibleError{
		ClientVersion: clientVersion,
		ServerVersion: serverVersion,
		MinVersion:    serverMajor,
	}
}
