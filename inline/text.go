package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/mediagrab/mediagrab/color"
	"github.com/mediagrab/mediagrab/constant"
	"github.com/mediagrab/mediagrab/icon"
	"github.com/mediagrab/mediagrab/option"
	"github.com/mediagrab/mediagrab/platform"
	"github.com/mediagrab/mediagrab/style"
	"github.com/mediagrab/mediagrab/util"
	"github.com/samber/lo"
)

func writeText(out io.Writer, result *option.Result, selected *option.DownloadOption, showURLs bool) error {
	var b strings.Builder

	name := string(result.Platform)
	if p, ok := platform.Get(result.Platform); ok {
		name = p.Name
	}

	b.WriteString(style.Title(name))
	if title := result.Metadata.Title; title != "" {
		b.WriteString(" " + style.Bold(title))
	}
	b.WriteString("\n")

	if details := metadataLine(result.Metadata); details != "" {
		b.WriteString(style.Faint(details) + "\n")
	}

	b.WriteString(style.Faint(fmt.Sprintf(
		"%s, default %s (%s)",
		util.Quantify(len(result.Options), "option", "options"),
		result.DefaultFormat,
		result.DefaultQuality,
	)) + "\n\n")

	width := util.TerminalWidth(80) - 6
	for _, o := range result.Options {
		marker := "  "
		if o == selected {
			marker = style.Fg(color.Green)(">") + " "
		}

		line := marker + style.Bold(o.Key())
		if tags := tagsOf(o); len(tags) > 0 {
			line += " " + strings.Join(tags, " ")
		}
		if o.Size != constant.Unknown && o.Size != "" {
			line += " " + style.Faint(o.Size)
		}
		b.WriteString(line + "\n")

		if showURLs {
			b.WriteString("    " + style.Faint(style.Truncate(width)(o.URL)) + "\n")
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func tagsOf(o *option.DownloadOption) []string {
	var tags []string

	if o.HasAudio {
		tags = append(tags, style.Fg(color.Cyan)(icon.Prefix(icon.Audio)+"audio"))
	} else {
		tags = append(tags, style.Fg(color.Gray)(icon.Prefix(icon.Muted)+"muted"))
	}

	if clean, ok := o.NoWatermark.Get(); ok {
		tags = append(tags, lo.Ternary(
			clean,
			style.Fg(color.Green)(icon.Prefix(icon.Clean)+"no watermark"),
			style.Fg(color.Yellow)(icon.Prefix(icon.Watermark)+"watermark"),
		))
	}

	if o.Format == option.Streaming {
		tags = append(tags, style.Fg(color.Purple)(icon.Prefix(icon.Streaming)+"hls"))
	}

	return tags
}

func metadataLine(m option.Metadata) string {
	var parts []string
	if m.Author != "" {
		parts = append(parts, "by "+m.Author)
	}
	if m.Duration != "" {
		parts = append(parts, m.Duration)
	}
	return strings.Join(parts, ", ")
}
