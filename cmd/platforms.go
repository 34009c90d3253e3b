package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mediagrab/mediagrab/color"
	"github.com/mediagrab/mediagrab/platform"
	"github.com/mediagrab/mediagrab/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(platformsCmd)
	platformsCmd.Flags().BoolP("json", "j", false, "Print platforms as JSON")
	platformsCmd.Flags().StringP("detect", "d", "", "Print the platform a URL resolves to")
}

var platformsCmd = &cobra.Command{
	Use:     "platforms",
	Aliases: []string{"platform"},
	Short:   "List supported platforms and the rules applied to them",
	Run: func(cmd *cobra.Command, args []string) {
		if link := lo.Must(cmd.Flags().GetString("detect")); link != "" {
			fmt.Println(platform.Detect(link).ID)
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			type entry struct {
				ID    string   `json:"id"`
				Name  string   `json:"name"`
				Hosts []string `json:"hosts"`
				Rules []string `json:"rules"`
			}

			handleErr(json.NewEncoder(os.Stdout).Encode(lo.Map(platform.All(), func(p *platform.Platform, _ int) entry {
				return entry{ID: string(p.ID), Name: p.Name, Hosts: p.Hosts, Rules: rulesOf(p.Rules)}
			})))
			return
		}

		for _, p := range platform.All() {
			fmt.Printf(
				"%s %s %s\n",
				style.New().Bold(true).Foreground(color.Purple).Render(string(p.ID)),
				style.Faint(strings.Join(p.Hosts, " ")),
				style.Fg(color.Yellow)(strings.Join(rulesOf(p.Rules), ", ")),
			)
		}
	},
}

func rulesOf(rules platform.Rules) []string {
	tags := []string{"audio:" + rules.Audio.String()}
	if rules.Streaming {
		tags = append(tags, "streaming")
	}
	if rules.WatermarkAware {
		tags = append(tags, "watermark")
	}
	if rules.ResolutionLabels {
		tags = append(tags, "resolution")
	}
	return tags
}
