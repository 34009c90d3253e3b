// Package platform holds the closed set of supported source platforms and
// the per-platform rules the option normalizer consults.
package platform

import (
	"strings"

	"github.com/samber/lo"
)

// ID identifies a source platform.
type ID string

const (
	YouTube     ID = "youtube"
	TikTok      ID = "tiktok"
	Facebook    ID = "facebook"
	Twitter     ID = "twitter"
	Instagram   ID = "instagram"
	Vimeo       ID = "vimeo"
	Dailymotion ID = "dailymotion"
	Telegram    ID = "telegram"
	Tumblr      ID = "tumblr"
	Snapchat    ID = "snapchat"
	Pinterest   ID = "pinterest"
	LinkedIn    ID = "linkedin"
	Imgur       ID = "imgur"
	Rumble      ID = "rumble"
	Bitchute    ID = "bitchute"
	Bsky        ID = "bsky"
	Reddit      ID = "reddit"
	SoundCloud  ID = "soundcloud"
	Twitch      ID = "twitch"
	Threads     ID = "threads"
	Bilibili    ID = "bilibili"
	Kick        ID = "kick"
	VK          ID = "vk"

	// Universal asks for the platform to be detected from the source URL.
	Universal ID = "universal"

	// Generic is the resolved identity of a URL no platform claims.
	Generic ID = "generic"
)

// AudioAssumption selects how audio presence is decided for a media entry.
type AudioAssumption int

const (
	// AudioHeuristic sniffs codecs, mime types, format ids and labels.
	AudioHeuristic AudioAssumption = iota
	// AudioAlways treats every entry as muxed audio and video.
	AudioAlways
	// AudioVideoMime trusts video containers and video mime types to carry audio.
	AudioVideoMime
)

func (a AudioAssumption) String() string {
	switch a {
	case AudioAlways:
		return "always"
	case AudioVideoMime:
		return "video-mime"
	default:
		return "heuristic"
	}
}

// Rules is the declarative behaviour of one platform.
type Rules struct {
	Audio AudioAssumption
	// Streaming reclassifies HLS playlists as the synthetic "streaming" format.
	Streaming bool
	// WatermarkAware relabels watermark qualities and keeps one video per quality.
	WatermarkAware bool
	// ResolutionLabels derives the quality label from a WIDTHxHEIGHT resolution.
	ResolutionLabels bool
}

// Platform describes a source platform and how to recognise its URLs.
type Platform struct {
	ID    ID
	Name  string
	Hosts []string
	Rules Rules
}

func (p *Platform) String() string {
	return p.Name
}

var muxed = Rules{Audio: AudioAlways}

var registry = []*Platform{
	{YouTube, "YouTube", []string{"youtube.com", "youtu.be", "youtube-nocookie.com"}, muxed},
	{TikTok, "TikTok", []string{"tiktok.com"}, Rules{Audio: AudioAlways, WatermarkAware: true}},
	{Facebook, "Facebook", []string{"facebook.com", "fb.watch", "fb.com"}, muxed},
	{Twitter, "Twitter", []string{"twitter.com", "x.com", "t.co"}, muxed},
	{Instagram, "Instagram", []string{"instagram.com", "instagr.am"}, muxed},
	{Vimeo, "Vimeo", []string{"vimeo.com"}, muxed},
	{Dailymotion, "Dailymotion", []string{"dailymotion.com", "dai.ly"}, Rules{Audio: AudioAlways, Streaming: true, ResolutionLabels: true}},
	{Telegram, "Telegram", []string{"t.me", "telegram.me", "telegram.org"}, muxed},
	{Tumblr, "Tumblr", []string{"tumblr.com"}, muxed},
	{Snapchat, "Snapchat", []string{"snapchat.com"}, muxed},
	{Pinterest, "Pinterest", []string{"pinterest.com", "pin.it"}, muxed},
	{LinkedIn, "LinkedIn", []string{"linkedin.com", "lnkd.in"}, muxed},
	{Imgur, "Imgur", []string{"imgur.com"}, Rules{Audio: AudioVideoMime}},
	{Rumble, "Rumble", []string{"rumble.com"}, muxed},
	{Bitchute, "BitChute", []string{"bitchute.com"}, Rules{}},
	{Bsky, "Bluesky", []string{"bsky.app", "bsky.social"}, Rules{Streaming: true}},
	{Reddit, "Reddit", []string{"reddit.com", "redd.it"}, Rules{Streaming: true}},
	{SoundCloud, "SoundCloud", []string{"soundcloud.com"}, Rules{}},
	{Twitch, "Twitch", []string{"twitch.tv"}, Rules{}},
	{Threads, "Threads", []string{"threads.net", "threads.com"}, Rules{}},
	{Bilibili, "Bilibili", []string{"bilibili.com", "b23.tv"}, Rules{}},
	{Kick, "Kick", []string{"kick.com"}, Rules{}},
	{VK, "VK", []string{"vk.com", "vkvideo.ru"}, Rules{}},
}

// All returns every registered platform in registry order.
func All() []*Platform {
	return registry
}

// IDs returns the registered identifiers followed by "universal".
func IDs() []string {
	ids := lo.Map(registry, func(p *Platform, _ int) string {
		return string(p.ID)
	})
	return append(ids, string(Universal))
}

// Get finds a registered platform by identifier, case-insensitively.
func Get(id ID) (*Platform, bool) {
	needle := ID(strings.ToLower(strings.TrimSpace(string(id))))
	return lo.Find(registry, func(p *Platform) bool {
		return p.ID == needle
	})
}

// Known reports whether id is registered or is the universal sentinel.
func Known(id ID) bool {
	if ID(strings.ToLower(string(id))) == Universal {
		return true
	}
	_, ok := Get(id)
	return ok
}

// Resolve returns the platform whose rules apply to a response for sourceURL.
// Universal is resolved by detection; identifiers outside the registry are
// accepted and fall through to generic rules under their own name.
func Resolve(id ID, sourceURL string) *Platform {
	id = ID(strings.ToLower(strings.TrimSpace(string(id))))
	if id == "" || id == Universal {
		return Detect(sourceURL)
	}

	if p, ok := Get(id); ok {
		return p
	}

	return &Platform{ID: id, Name: string(id)}
}
