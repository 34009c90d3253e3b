// Package selection tracks the user's format and quality choice over a
// ranked option list.
package selection

import (
	"github.com/mediagrab/mediagrab/option"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Selection is the (format, quality) state over a fixed option list.
// Transitions never refetch or reorder the list.
type Selection struct {
	options []*option.DownloadOption
	format  string
	quality string
}

// New starts a selection at the result's defaults.
func New(result *option.Result) *Selection {
	return &Selection{
		options: result.Options,
		format:  result.DefaultFormat,
		quality: result.DefaultQuality,
	}
}

// Format returns the selected format.
func (s *Selection) Format() string {
	return s.format
}

// Quality returns the selected quality.
func (s *Selection) Quality() string {
	return s.quality
}

// Formats lists the selectable formats in ranked order.
func (s *Selection) Formats() []string {
	return option.Formats(s.options)
}

// Qualities lists the qualities available for the selected format.
func (s *Selection) Qualities() []string {
	return lo.Map(option.OfFormat(s.options, s.format), func(o *option.DownloadOption, _ int) string {
		return o.Quality
	})
}

// SelectFormat switches to format and re-applies the default quality rule
// for it. A format with no options leaves the quality empty.
func (s *Selection) SelectFormat(format string) {
	s.format = format
	s.quality = option.DefaultQuality(s.options, format).OrEmpty()
}

// SelectQuality switches the quality within the selected format.
func (s *Selection) SelectQuality(quality string) {
	s.quality = quality
}

// Current returns the selected option, if the pair exists.
func (s *Selection) Current() mo.Option[*option.DownloadOption] {
	return option.Find(s.options, s.format, s.quality)
}

// URL returns the selected option's URL, if the pair exists.
func (s *Selection) URL() mo.Option[string] {
	if current, ok := s.Current().Get(); ok {
		return mo.Some(current.URL)
	}
	return mo.None[string]()
}
