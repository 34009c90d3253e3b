// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Platform Resolution - these keys govern which rule set is applied to a provider response.
const (
	PlatformDefault = "platform.default"
)

// Extraction Service - these keys configure the upstream provider that turns a source URL into a response.
const (
	ProviderEndpoint = "provider.endpoint"
	ProviderTimeout  = "provider.timeout"
)

// Network Transport - these keys tune the HTTP client used to reach the extraction service.
const (
	NetworkSpoofTLS = "network.spoof_tls"
)

// Output Rendering - these keys shape how ranked options are printed.
const (
	OutputJson     = "output.json"
	OutputShowURLs = "output.show_urls"
)

// History Tracking - these keys configure persistence of past submissions.
const (
	HistorySave = "history.save"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
