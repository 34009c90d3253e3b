// Package inline runs the non-interactive mode: normalize a response, apply
// the requested choice and print the result.
package inline

import (
	"fmt"
	"os"
	"strings"

	"github.com/mediagrab/mediagrab/history"
	"github.com/mediagrab/mediagrab/key"
	"github.com/mediagrab/mediagrab/log"
	"github.com/mediagrab/mediagrab/option"
	"github.com/mediagrab/mediagrab/selection"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ChoiceError reports a format or quality override that matches no option.
type ChoiceError struct {
	Kind      string
	Value     string
	Available []string
}

func (e *ChoiceError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
	}
	return fmt.Sprintf("unknown %s %q, available: %s", e.Kind, e.Value, strings.Join(e.Available, ", "))
}

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	result, err := option.Normalize(options.Response, options.Platform, options.URL)
	if err != nil {
		return err
	}

	selected, err := choose(result, options)
	if err != nil {
		return err
	}

	if options.URL != "" && viper.GetBool(key.HistorySave) {
		if err := history.Save(options.URL, result, selected.Format, selected.Quality); err != nil {
			log.Warnf("failed to save history: %s", err)
		}
	}

	switch {
	case options.URLOnly:
		_, err = fmt.Fprintln(options.Out, selected.URL)
		return err
	case options.Json:
		return writeJson(options.Out, newOutput(options.URL, result, selected))
	default:
		return writeText(options.Out, result, selected, options.ShowURLs)
	}
}

func choose(result *option.Result, options *Options) (*option.DownloadOption, error) {
	s := selection.New(result)

	if format, ok := options.Format.Get(); ok {
		format = strings.ToLower(format)
		s.SelectFormat(format)
		if len(s.Qualities()) == 0 {
			return nil, &ChoiceError{Kind: "format", Value: format, Available: s.Formats()}
		}
	}

	if quality, ok := options.Quality.Get(); ok {
		s.SelectQuality(matchQuality(s.Qualities(), quality))
	}

	current, ok := s.Current().Get()
	if !ok {
		return nil, &ChoiceError{Kind: "quality", Value: s.Quality(), Available: s.Qualities()}
	}

	return current, nil
}

// matchQuality returns the listed quality equal to quality, ignoring case
// when no exact match exists. Unmatched input is returned unchanged.
func matchQuality(qualities []string, quality string) string {
	if lo.Contains(qualities, quality) {
		return quality
	}
	if found, ok := lo.Find(qualities, func(q string) bool {
		return strings.EqualFold(q, quality)
	}); ok {
		return found
	}
	return quality
}
