package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mediagrab/mediagrab/constant"
	"github.com/mediagrab/mediagrab/icon"
	"github.com/mediagrab/mediagrab/inline"
	"github.com/mediagrab/mediagrab/open"
	"github.com/mediagrab/mediagrab/option"
	"github.com/mediagrab/mediagrab/selection"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pickCmd)
	addInputFlags(pickCmd)

	pickCmd.Flags().BoolP("open", "O", false, "Open the picked URL with the default handler")
	pickCmd.Flags().StringP("with", "w", "", "Open the picked URL with this application")
}

var pickCmd = &cobra.Command{
	Use:   "pick [url]",
	Short: "Choose a format and quality interactively and print its URL",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		response, sourceURL, err := loadResponse(cmd, args)
		handleErr(err)

		id := platformFlag(cmd)
		result, err := option.Normalize(response, id, sourceURL)
		handleErr(err)

		s := selection.New(result)

		format := s.Format()
		handleErr(survey.AskOne(&survey.Select{
			Message: "Format",
			Options: s.Formats(),
			Default: format,
		}, &format))
		s.SelectFormat(format)

		quality := s.Quality()
		handleErr(survey.AskOne(&survey.Select{
			Message: "Quality",
			Options: s.Qualities(),
			Default: quality,
			Description: func(value string, _ int) string {
				if o, ok := option.Find(result.Options, format, value).Get(); ok {
					return describe(o)
				}
				return ""
			},
		}, &quality))

		// Run again through the inline path so history is recorded the same way.
		var out bytes.Buffer
		handleErr(inline.Run(&inline.Options{
			Out:      &out,
			Response: response,
			Platform: id,
			URL:      sourceURL,
			URLOnly:  true,
			Format:   mo.Some(format),
			Quality:  mo.Some(quality),
		}))

		link := strings.TrimSpace(out.String())
		fmt.Println(link)

		app := lo.Must(cmd.Flags().GetString("with"))
		if lo.Must(cmd.Flags().GetBool("open")) || app != "" {
			handleErr(open.StartWith(link, app))
			_, _ = fmt.Fprintf(os.Stderr, "%s opened %s (%s)\n", icon.Get(icon.Success), format, quality)
		}
	},
}

func describe(o *option.DownloadOption) string {
	tags := []string{lo.Ternary(o.HasAudio, "audio", "muted")}
	if clean, ok := o.NoWatermark.Get(); ok {
		tags = append(tags, lo.Ternary(clean, "no watermark", "watermark"))
	}
	if o.Size != constant.Unknown {
		tags = append(tags, o.Size)
	}
	return strings.Join(tags, ", ")
}
