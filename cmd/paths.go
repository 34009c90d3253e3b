package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mediagrab/mediagrab/color"
	"github.com/mediagrab/mediagrab/icon"
	"github.com/mediagrab/mediagrab/style"
	"github.com/mediagrab/mediagrab/util"
	"github.com/mediagrab/mediagrab/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// resource is a path mediagrab owns, shown by where and removable by clear.
type resource struct {
	name      string
	flag      string
	short     mo.Option[string]
	location  func() string
	clearable bool
	hidden    bool
}

var resources = []*resource{
	{"Config", "config", mo.Some("c"), where.Config, false, false},
	{"Logs", "logs", mo.Some("l"), where.Logs, true, false},
	{"History", "history", mo.Some("s"), where.History, true, false},
	{"Cache", "cache", mo.None[string](), where.Cache, true, true},
}

func addResourceFlag(cmd *cobra.Command, r *resource, help string) {
	if short, ok := r.short.Get(); ok {
		cmd.Flags().BoolP(r.flag, short, false, help)
	} else {
		cmd.Flags().Bool(r.flag, false, help)
	}
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)

	for _, r := range resources {
		addResourceFlag(whereCmd, r, r.name+" path")
		if r.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(r.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(resources, func(r *resource, _ int) string {
		return r.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where mediagrab keeps its config, logs and history",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range resources {
			if lo.Must(cmd.Flags().GetBool(r.flag)) {
				cmd.Println(r.location())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(resources, func(r *resource, _ int) bool { return r.hidden })

		for i, r := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(r.name+"?"), style.Fg(color.Yellow)("--"+r.flag))
			cmd.Println(r.location())
		}
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, r := range resources {
		if r.clearable {
			addResourceFlag(clearCmd, r, "clear "+r.name)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached data, history or logs",
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter(resources, func(r *resource, _ int) bool {
			return r.clearable && lo.Must(cmd.Flags().GetBool(r.flag))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, r := range targets {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), r.name))
			err := util.Delete(r.location())
			erase()
			if !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), r.name)
		}
	},
}
