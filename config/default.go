package config

import (
	"github.com/mediagrab/mediagrab/key"
	"github.com/samber/lo"
)

var fields = []Field{
	{key.PlatformDefault, "universal", "Platform rules applied when none is given.\n\"universal\" detects the platform from the source URL"},
	{key.ProviderEndpoint, "", "Extraction service endpoint that turns a source URL into a provider response.\nLeave empty to only normalize saved responses"},
	{key.ProviderTimeout, 60, "Timeout in seconds for a single extraction request"},
	{key.NetworkSpoofTLS, false, "Present a browser TLS fingerprint to the extraction service"},
	{key.OutputJson, false, "Print options as JSON instead of a styled listing"},
	{key.OutputShowURLs, true, "Show option URLs in the styled listing"},
	{key.HistorySave, true, "Remember submitted URLs and the option picked for them"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
}

// Default maps every registered key to its field.
var Default = lo.SliceToMap(fields, func(f Field) (string, Field) {
	return f.Key, f
})

// EnvExposed lists the keys bound to environment variables.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string {
	return f.Key
})

// Fields returns every registered field in registration order.
func Fields() []Field {
	return fields
}
