package option

import "github.com/samber/lo"

// dedupeByQuality keeps one video option per quality label, preferring a
// confirmed watermark-free one, and puts every audio option first. Labels are
// compared before collision suffixes, and a replacement takes over the
// quality of the option it displaces.
func dedupeByQuality(options []*DownloadOption) []*DownloadOption {
	audio, video := lo.FilterReject(options, func(o *DownloadOption, _ int) bool {
		return o.IsAudio()
	})

	index := make(map[string]int, len(video))
	kept := make([]*DownloadOption, 0, len(video))

	for _, o := range video {
		label := o.rankLabel()
		i, ok := index[label]
		if !ok {
			index[label] = len(kept)
			kept = append(kept, o)
			continue
		}

		if !kept[i].Clean() && o.Clean() {
			o.Quality = kept[i].Quality
			kept[i] = o
		}
	}

	return append(audio, kept...)
}
