package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mediagrab/mediagrab/auth"
	"github.com/mediagrab/mediagrab/icon"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authDeleteCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the extraction service token kept in the system keyring",
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the extraction service token",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) > 0 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{Message: "Token:"}, &token))
		}

		if token == "" {
			handleErr(errors.New("token is empty"))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token saved\n", icon.Get(icon.Success))
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Remove the stored extraction service token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token deleted\n", icon.Get(icon.Success))
	},
}
