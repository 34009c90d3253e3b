package inline

import (
	"encoding/json"
	"io"

	"github.com/mediagrab/mediagrab/option"
)

// Output is the JSON document printed by --json.
type Output struct {
	URL            string                   `json:"url,omitempty" jsonschema:"description=Source URL the options were extracted for."`
	Platform       string                   `json:"platform" jsonschema:"description=Platform whose rules were applied, after detection."`
	Metadata       option.Metadata          `json:"metadata"`
	Options        []*option.DownloadOption `json:"options" jsonschema:"description=Options ranked best first."`
	DefaultFormat  string                   `json:"defaultFormat" jsonschema:"description=Format of the first ranked option."`
	DefaultQuality string                   `json:"defaultQuality" jsonschema:"description=First quality of the default format with audio, else its first quality."`
	Selected       *option.DownloadOption   `json:"selected" jsonschema:"description=Option picked by the default or by --format and --quality."`
}

func newOutput(sourceURL string, result *option.Result, selected *option.DownloadOption) *Output {
	return &Output{
		URL:            sourceURL,
		Platform:       string(result.Platform),
		Metadata:       result.Metadata,
		Options:        result.Options,
		DefaultFormat:  result.DefaultFormat,
		DefaultQuality: result.DefaultQuality,
		Selected:       selected,
	}
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
