package option

import (
	"cmp"

	"github.com/mediagrab/mediagrab/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Rank sorts options best default first: options with audio, then mp4, then
// the higher number found in the quality label (collision suffixes aside).
// Equal options keep their extraction order.
func Rank(options []*DownloadOption) {
	slices.SortStableFunc(options, compare)
}

func compare(a, b *DownloadOption) int {
	if a.HasAudio != b.HasAudio {
		return lo.Ternary(a.HasAudio, -1, 1)
	}

	aMP4, bMP4 := a.Format == "mp4", b.Format == "mp4"
	if aMP4 != bMP4 {
		return lo.Ternary(aMP4, -1, 1)
	}

	return cmp.Compare(util.Digits(b.rankLabel()), util.Digits(a.rankLabel()))
}

// DefaultQuality picks the quality pre-selected for format: the first one
// with audio, else the first one. None when no option has that format.
func DefaultQuality(options []*DownloadOption, format string) mo.Option[string] {
	ofFormat := OfFormat(options, format)
	if len(ofFormat) == 0 {
		return mo.None[string]()
	}

	if withAudio, ok := lo.Find(ofFormat, func(o *DownloadOption) bool { return o.HasAudio }); ok {
		return mo.Some(withAudio.Quality)
	}

	return mo.Some(ofFormat[0].Quality)
}

// OfFormat returns the options of format in their current order.
func OfFormat(options []*DownloadOption, format string) []*DownloadOption {
	return lo.Filter(options, func(o *DownloadOption, _ int) bool {
		return o.Format == format
	})
}

// Formats returns the distinct formats in order of first appearance.
func Formats(options []*DownloadOption) []string {
	return lo.Uniq(lo.Map(options, func(o *DownloadOption, _ int) string {
		return o.Format
	}))
}

// Find returns the option with the given format and quality.
func Find(options []*DownloadOption, format, quality string) mo.Option[*DownloadOption] {
	if found, ok := lo.Find(options, func(o *DownloadOption) bool {
		return o.Format == format && o.Quality == quality
	}); ok {
		return mo.Some(found)
	}
	return mo.None[*DownloadOption]()
}
