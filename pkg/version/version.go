// Package version holds build metadata set via -ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return "utmtag " + Version + " (" + Commit + ") built " + Date
}
