package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mediagrab/mediagrab/auth"
	"github.com/mediagrab/mediagrab/color"
	"github.com/mediagrab/mediagrab/filesystem"
	"github.com/mediagrab/mediagrab/history"
	"github.com/mediagrab/mediagrab/icon"
	"github.com/mediagrab/mediagrab/key"
	"github.com/mediagrab/mediagrab/log"
	"github.com/mediagrab/mediagrab/network"
	"github.com/mediagrab/mediagrab/platform"
	"github.com/mediagrab/mediagrab/provider"
	"github.com/mediagrab/mediagrab/style"
	"github.com/mediagrab/mediagrab/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addInputFlags registers the flags shared by commands that consume a provider response.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Read the provider response from a file (\"-\" for stdin) instead of fetching it")
	cmd.Flags().StringP("platform", "p", "", "Platform whose rules apply (\"universal\" detects it from the URL)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("platform", completionPlatforms))
	cmd.ValidArgsFunction = completionHistory
}

func completionHistory(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return history.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completionPlatforms(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return platform.IDs(), cobra.ShellCompDirectiveNoFileComp
}

// loadResponse returns the provider response for the command and the source URL it describes.
func loadResponse(cmd *cobra.Command, args []string) (*provider.Response, string, error) {
	var sourceURL string
	if len(args) > 0 {
		sourceURL = strings.TrimSpace(args[0])
	}

	if input := lo.Must(cmd.Flags().GetString("input")); input != "" {
		file, err := filesystem.Open(input)
		if err != nil {
			return nil, "", err
		}
		defer util.Ignore(file.Close)

		response, err := provider.Decode(file)
		return response, sourceURL, err
	}

	if sourceURL == "" {
		return nil, "", errors.New("a source URL or --input is required")
	}

	client := provider.NewClient(network.FromConfig(), viper.GetString(key.ProviderEndpoint), auth.Token())

	erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), sourceURL))
	response, err := client.Fetch(context.Background(), sourceURL)
	erase()

	return response, sourceURL, err
}

// platformFlag returns the platform requested on the command line or in the config.
// Unregistered identifiers are kept, with a hint printed when one looks like a typo.
func platformFlag(cmd *cobra.Command) platform.ID {
	name := lo.Must(cmd.Flags().GetString("platform"))
	if name == "" {
		name = viper.GetString(key.PlatformDefault)
	}

	id := platform.ID(strings.ToLower(strings.TrimSpace(name)))
	if id == "" || platform.Known(id) {
		return id
	}

	log.Warnf("unknown platform %s, using generic rules", id)
	if suggestions := platform.Suggest(string(id)); len(suggestions) > 0 {
		_, _ = fmt.Fprintf(
			os.Stderr,
			"%s unknown platform %s, did you mean %s?\n",
			icon.Get(icon.Progress),
			style.Fg(color.Red)(string(id)),
			style.Fg(color.Yellow)(suggestions[0]),
		)
	}

	return id
}
