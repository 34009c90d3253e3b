package cmd

import (
	"encoding/json"
	"io"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/mediagrab/mediagrab/filesystem"
	"github.com/mediagrab/mediagrab/inline"
	"github.com/mediagrab/mediagrab/key"
	"github.com/mediagrab/mediagrab/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(optionsCmd)
	addInputFlags(optionsCmd)

	optionsCmd.Flags().StringP("format", "f", "", "Select this format instead of the default")
	optionsCmd.Flags().StringP("quality", "q", "", "Select this quality within the format")
	optionsCmd.Flags().BoolP("url-only", "u", false, "Print only the selected option's URL")
	optionsCmd.Flags().StringP("output", "o", "", "Write the output to a file")

	optionsCmd.Flags().BoolP("json", "j", false, "Print options as JSON")
	lo.Must0(viper.BindPFlag(key.OutputJson, optionsCmd.Flags().Lookup("json")))

	optionsCmd.Flags().Bool("urls", true, "Show option URLs in the listing")
	lo.Must0(viper.BindPFlag(key.OutputShowURLs, optionsCmd.Flags().Lookup("urls")))

	optionsCmd.MarkFlagsMutuallyExclusive("json", "url-only")
}

var optionsCmd = &cobra.Command{
	Use:   "options [url]",
	Short: "List the download options for a media link",
	Long: `List the download options for a media link.

The provider response is fetched from the configured extraction service,
or read from --input when given. The URL is still used for platform
detection and history when reading from a file.`,
	Example: `  mediagrab options https://youtu.be/dQw4w9WgXcQ
  mediagrab options -i response.json -p tiktok -j
  curl ... | mediagrab options -i - -u -f mp3`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		response, sourceURL, err := loadResponse(cmd, args)
		handleErr(err)

		var out io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			out = file
		}

		options := &inline.Options{
			Out:      out,
			Response: response,
			Platform: platformFlag(cmd),
			URL:      sourceURL,
			Json:     viper.GetBool(key.OutputJson),
			URLOnly:  lo.Must(cmd.Flags().GetBool("url-only")),
			ShowURLs: viper.GetBool(key.OutputShowURLs),
			Format:   inline.ParseChoice(lo.Must(cmd.Flags().GetString("format"))),
			Quality:  inline.ParseChoice(lo.Must(cmd.Flags().GetString("quality"))),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	optionsCmd.AddCommand(optionsSchemaCmd)
}

var optionsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(outputSchema()))
	},
}

func outputSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
		if t == reflect.TypeOf(mo.Option[bool]{}) {
			return &jsonschema.Schema{Type: "boolean"}
		}
		return nil
	}

	return reflector.Reflect(&inline.Output{})
}
