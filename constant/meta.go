// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Mediagrab is the canonical application identifier used for filesystem paths and CLI branding.
	Mediagrab = "mediagrab"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the default HTTP User-Agent string used for requests to the extraction service.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Unknown is the sentinel used for sizes and labels the provider did not report.
const Unknown = "Unknown"
