package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mediagrab/mediagrab/color"
	"github.com/mediagrab/mediagrab/history"
	"github.com/mediagrab/mediagrab/icon"
	"github.com/mediagrab/mediagrab/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print history as JSON")
	historyCmd.Flags().StringP("remove", "r", "", "Remove the entry for this source URL")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show remembered links and the options picked for them",
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.List()
		handleErr(err)

		if link := lo.Must(cmd.Flags().GetString("remove")); link != "" {
			entry, ok := lo.Find(entries, func(e *history.Entry) bool { return e.URL == link })
			if !ok {
				handleErr(fmt.Errorf("no history entry for %s", link))
			}

			handleErr(history.Remove(entry))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), link)
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(entries))
			return
		}

		if len(entries) == 0 {
			fmt.Println(style.Faint("history is empty"))
			return
		}

		for _, e := range entries {
			fmt.Printf(
				"%s %s\n  %s %s\n",
				style.Bold(e.String()),
				style.Faint(e.Time.Format("2006-01-02 15:04")),
				style.Fg(color.Yellow)(fmt.Sprintf("%s (%s)", e.Format, e.Quality)),
				style.Faint(e.URL),
			)
		}
	},
}
