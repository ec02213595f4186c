package cmd

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tunesearch-cli/tunesearch/filesystem"
	"github.com/tunesearch-cli/tunesearch/inline"
	"github.com/tunesearch-cli/tunesearch/itunes"
	"github.com/tunesearch-cli/tunesearch/key"
	"github.com/tunesearch-cli/tunesearch/media"
	"github.com/tunesearch-cli/tunesearch/open"
	"github.com/tunesearch-cli/tunesearch/util"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "The search term to look up in the catalog")
	lo.Must0(searchCmd.MarkFlagRequired("query"))
	searchCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	searchCmd.Flags().StringP("filter", "f", "", "Keep only entries whose description fuzzy-matches this text")
	searchCmd.Flags().IntP("open", "n", 0, "Open the entry with this number in the browser after listing")
	searchCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// searchCmd runs a single search without prompting.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a single catalog search in non-interactive, scriptable mode",
	Long: `Run a single catalog search and print the numbered listing.

Entries are numbered across groups in the order songs, movies, other media.
The same numbers are used by --open and by the JSON output.`,
	Example: `  tunesearch search -q Beethoven
  tunesearch search -q Beethoven --media music --limit 10 --json
  tunesearch search -q "Abbey Road" --filter beatles --open 1`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			query  = lo.Must(cmd.Flags().GetString("query"))
			output = lo.Must(cmd.Flags().GetString("output"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			writer io.Writer
		)

		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		} else {
			writer = os.Stdout
		}

		options := &inline.Options{
			Out:      writer,
			Searcher: itunes.NewFromConfig(),
			Params:   itunes.ParamsFromConfig(query),
			Classifier: media.Classifier{
				KeepUnrecognized: viper.GetBool(key.ClassifyKeepUnrecognized),
			},
			Json:   asJson,
			Opener: open.Browser(viper.GetString(key.BrowserApp)),
		}

		if cmd.Flags().Changed("filter") {
			options.Filter = mo.Some(lo.Must(cmd.Flags().GetString("filter")))
		}

		if cmd.Flags().Changed("open") {
			options.Open = mo.Some(lo.Must(cmd.Flags().GetInt("open")))
		}

		if !asJson && output == "" {
			options.Heading, options.Width = listingStyle()
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	searchCmd.AddCommand(searchSchemaCmd)
}

// searchSchemaCmd prints the JSON Schema of the search --json output.
var searchSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured search output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&inline.Output{})))
	},
}
