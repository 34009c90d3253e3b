package option

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mediagrab/mediagrab/constant"
	"github.com/mediagrab/mediagrab/log"
	"github.com/mediagrab/mediagrab/platform"
	"github.com/mediagrab/mediagrab/provider"
	"github.com/mediagrab/mediagrab/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var resolutionPattern = regexp.MustCompile(`^\s*(?P<width>\d+)\s*x\s*(?P<height>\d+)\s*$`)

// collisions is the fold state of one extraction: the keys emitted so far
// and, per colliding key, the next suffix to try.
type collisions struct {
	seen map[string]bool
	next map[string]int
}

func newCollisions() *collisions {
	return &collisions{
		seen: make(map[string]bool),
		next: make(map[string]int),
	}
}

// claim returns a quality label that makes (format, quality) unique,
// appending " 2", " 3", ... to repeated labels.
func (c *collisions) claim(format, quality string) string {
	base := key(format, quality)
	if !c.seen[base] {
		c.seen[base] = true
		return quality
	}

	n := c.next[base]
	if n == 0 {
		n = 2
	}

	candidate := fmt.Sprintf("%s %d", quality, n)
	for c.seen[key(format, candidate)] {
		n++
		candidate = fmt.Sprintf("%s %d", quality, n)
	}

	c.next[base] = n + 1
	c.seen[key(format, candidate)] = true
	return candidate
}

// extractFormats flattens a formats-shaped response. Such responses carry no
// audio information, so every option is treated as silent.
func extractFormats(formats *provider.FormatMap) []*DownloadOption {
	var options []*DownloadOption
	seen := newCollisions()

	for f := formats.Oldest(); f != nil; f = f.Next() {
		if f.Value == nil {
			continue
		}

		format := strings.ToLower(strings.TrimSpace(f.Key))
		for q := f.Value.Oldest(); q != nil; q = q.Next() {
			details := q.Value
			if details == nil || strings.TrimSpace(details.URL) == "" {
				log.Debugf("skipping %s %s: no url", f.Key, q.Key)
				continue
			}

			quality := seen.claim(format, q.Key)

			options = append(options, &DownloadOption{
				URL:         details.URL,
				Format:      format,
				Quality:     quality,
				label:       q.Key,
				Size:        details.Size.Text().OrElse(constant.Unknown),
				NoWatermark: mo.None[bool](),
			})
		}
	}

	return options
}

// extractMedias folds a medias-shaped response into options. Entries without
// a URL are dropped.
func extractMedias(medias []*provider.Media, rules platform.Rules) []*DownloadOption {
	type fold struct {
		options []*DownloadOption
		seen    *collisions
	}

	result := lo.Reduce(medias, func(acc fold, media *provider.Media, i int) fold {
		if media == nil || strings.TrimSpace(media.URL) == "" {
			log.Debugf("skipping media #%d: no url", i)
			return acc
		}

		o := fromMedia(media, rules)
		o.label = o.Quality
		o.Quality = acc.seen.claim(o.Format, o.Quality)

		acc.options = append(acc.options, o)
		return acc
	}, fold{seen: newCollisions()})

	return result.options
}

func fromMedia(media *provider.Media, rules platform.Rules) *DownloadOption {
	format := strings.ToLower(firstText(media.Ext, media.Type).OrElse("mp4"))
	quality := qualityLabel(media)

	o := &DownloadOption{
		URL:         media.URL,
		Format:      format,
		Quality:     quality,
		Size:        media.Size.Text().OrElse(constant.Unknown),
		HasAudio:    hasAudio(rules, media, format, quality),
		NoWatermark: media.NoWatermark.Bool(),
	}

	if rules.WatermarkAware {
		relabelWatermark(o)
	}

	if rules.ResolutionLabels {
		groups := util.ReGroups(resolutionPattern, media.Resolution.String())
		if height, ok := groups["height"]; ok {
			o.Quality = height + "p"
		}
	}

	if rules.Streaming && isPlaylist(media, format) {
		o.Format = Streaming
	}

	return o
}

// qualityLabel is label, else quality, else the height suffixed with "p".
func qualityLabel(media *provider.Media) string {
	if label, ok := firstText(media.Label, media.Quality).Get(); ok {
		return label
	}

	if height, ok := media.Height.Text().Get(); ok {
		return height + "p"
	}

	return constant.Unknown
}

func hasAudio(rules platform.Rules, media *provider.Media, format, quality string) bool {
	switch rules.Audio {
	case platform.AudioAlways:
		return true
	case platform.AudioVideoMime:
		return lo.Contains([]string{"mp4", "webm"}, strings.ToLower(format)) ||
			strings.Contains(media.MimeType.String(), "video")
	default:
		return media.AudioQuality.Present() ||
			strings.Contains(media.MimeType.String(), "mp4a") ||
			strings.Contains(media.Codecs.String(), "mp4a") ||
			media.FormatID.Equals(18) ||
			strings.Contains(strings.ToLower(quality), "audio") ||
			isAudioFormat(format)
	}
}

// relabelWatermark rewrites provider watermark labels into HD/SD labels and
// records the watermark state. Audio tracks have no watermark.
func relabelWatermark(o *DownloadOption) {
	label := strings.ToLower(o.Quality)
	tier := lo.Ternary(strings.Contains(label, "hd"), "HD", "SD")

	switch {
	case strings.Contains(label, "no_watermark"):
		o.Quality = tier
		o.NoWatermark = mo.Some(true)
	case strings.Contains(label, "watermark"):
		o.Quality = tier + " with Watermark"
		o.NoWatermark = mo.Some(false)
	}

	if isAudioFormat(o.Format) {
		o.Quality = "Audio"
		o.NoWatermark = mo.None[bool]()
	}
}

func isPlaylist(media *provider.Media, format string) bool {
	return strings.EqualFold(media.Extension.String(), "m3u8") ||
		format == "m3u8" ||
		strings.Contains(media.URL, ".m3u8")
}

func isAudioFormat(format string) bool {
	switch strings.ToLower(format) {
	case "mp3", "m4a":
		return true
	default:
		return false
	}
}

func firstText(values ...provider.Scalar) mo.Option[string] {
	for _, v := range values {
		if text, ok := v.Text().Get(); ok {
			return mo.Some(text)
		}
	}
	return mo.None[string]()
}
