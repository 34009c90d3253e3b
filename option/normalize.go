package option

import (
	"github.com/mediagrab/mediagrab/log"
	"github.com/mediagrab/mediagrab/platform"
	"github.com/mediagrab/mediagrab/provider"
	"github.com/sirupsen/logrus"
)

// Normalize converts response into ranked options for the platform p, with
// sourceURL used to detect the platform when p is universal. It fails with a
// NoOptionsError when the provider reported an error, sent neither formats
// nor medias, or nothing usable could be extracted.
//
// Normalize has no side effects beyond debug logging; every call builds its
// result from scratch.
func Normalize(response *provider.Response, p platform.ID, sourceURL string) (*Result, error) {
	if response == nil {
		return nil, noOptions("")
	}

	message := response.Message.Text().OrEmpty()
	if response.Failed() {
		return nil, noOptions(message)
	}

	resolved := platform.Resolve(p, sourceURL)
	rules := resolved.Rules

	var options []*DownloadOption
	switch response.Shape() {
	case provider.ShapeFormats:
		options = extractFormats(response.Formats)
	case provider.ShapeMedias:
		options = extractMedias(response.Medias, rules)
	default:
		return nil, noOptions(message)
	}

	if rules.WatermarkAware {
		options = dedupeByQuality(options)
	}

	if len(options) == 0 {
		return nil, noOptions(message)
	}

	Rank(options)

	defaultFormat := options[0].Format
	result := &Result{
		Platform:       resolved.ID,
		Options:        options,
		DefaultFormat:  defaultFormat,
		DefaultQuality: DefaultQuality(options, defaultFormat).OrEmpty(),
		Metadata: Metadata{
			Title:     response.Title.String(),
			Thumbnail: response.Thumbnail.String(),
			Author:    response.Author.String(),
			Duration:  response.Duration.String(),
		},
	}

	log.WithFields(logrus.Fields{
		"platform": resolved.ID,
		"shape":    response.Shape().String(),
		"options":  len(options),
		"default":  result.DefaultFormat + " " + result.DefaultQuality,
	}).Debug("normalized provider response")

	return result, nil
}
