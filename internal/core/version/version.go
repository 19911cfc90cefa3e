// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for the api binary.
func Info() BuildInfo { return For("wattpool-api") }

// For returns the build information stamped for service. The version, commit,
// and date variables are set at build time using -ldflags:
//
//	-X 'wattpool/internal/core/version.version=v0.1.0'
//	-X 'wattpool/internal/core/version.commit=abcd'
//	-X 'wattpool/internal/core/version.date=2026-10-19'
func For(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
