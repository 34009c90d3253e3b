// Package option turns a provider response into a ranked, deduplicated list
// of download options with a default format and quality pre-selected.
package option

import (
	"encoding/json"
	"fmt"

	"github.com/mediagrab/mediagrab/platform"
	"github.com/samber/mo"
)

// Streaming is the synthetic format given to HLS playlists on platforms that
// serve them in place of progressive files.
const Streaming = "streaming"

// DownloadOption is one user-selectable variant of a media item.
type DownloadOption struct {
	URL      string `json:"url"`
	Format   string `json:"format"`
	Quality  string `json:"quality"`
	Size     string `json:"size"`
	HasAudio bool   `json:"hasAudio"`
	// NoWatermark is Some(true) for confirmed clean variants, Some(false) for
	// confirmed watermarked ones and None where watermarks are not tracked.
	NoWatermark mo.Option[bool] `json:"noWatermark,omitempty"`

	// label is the quality before collision suffixes were appended.
	label string
}

// Key is the "format (quality)" identity used for collision checks.
func (o *DownloadOption) Key() string {
	return key(o.Format, o.Quality)
}

// IsAudio reports whether the option is an audio-only container.
func (o *DownloadOption) IsAudio() bool {
	return isAudioFormat(o.Format)
}

// Clean reports a confirmed watermark-free variant.
func (o *DownloadOption) Clean() bool {
	return o.NoWatermark.OrElse(false)
}

// rankLabel is the label whose number orders the option.
func (o *DownloadOption) rankLabel() string {
	if o.label != "" {
		return o.label
	}
	return o.Quality
}

func (o *DownloadOption) String() string {
	return o.Key()
}

// MarshalJSON omits noWatermark when it is not tracked.
func (o DownloadOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		URL         string `json:"url"`
		Format      string `json:"format"`
		Quality     string `json:"quality"`
		Size        string `json:"size"`
		HasAudio    bool   `json:"hasAudio"`
		NoWatermark *bool  `json:"noWatermark,omitempty"`
	}{
		URL:         o.URL,
		Format:      o.Format,
		Quality:     o.Quality,
		Size:        o.Size,
		HasAudio:    o.HasAudio,
		NoWatermark: o.NoWatermark.ToPointer(),
	})
}

// Metadata is the descriptive part of a provider response.
type Metadata struct {
	Title     string `json:"title,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Author    string `json:"author,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// Result is the outcome of normalizing one provider response.
type Result struct {
	// Platform is the platform whose rules were applied, after detection.
	Platform       platform.ID       `json:"platform"`
	Options        []*DownloadOption `json:"options"`
	DefaultFormat  string            `json:"defaultFormat"`
	DefaultQuality string            `json:"defaultQuality"`
	Metadata       Metadata          `json:"metadata"`
}

// Default returns the option matching the default format and quality.
func (r *Result) Default() mo.Option[*DownloadOption] {
	return Find(r.Options, r.DefaultFormat, r.DefaultQuality)
}

func key(format, quality string) string {
	return fmt.Sprintf("%s (%s)", format, quality)
}
