// Values here are injected at build time with
//
//	-ldflags "-X exusiai.dev/hystats/internal/pkg/bininfo.Version=... -X exusiai.dev/hystats/internal/pkg/bininfo.BuildTime=..."
//
// so the variable names must not change.
package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a '+' when known.
	Version = "v0.0.0"

	// BuildTime is an RFC 3339 timestamp of the build.
	BuildTime = "1970-01-01T00:00:00Z"
)

// Describe renders the version line printed by `hystats --version`.
func Describe() string {
	return Version + " (built " + BuildTime + ")"
}
