// Package cmd implements the command-line interface for tunesearch.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tunesearch-cli/tunesearch/color"
	"github.com/tunesearch-cli/tunesearch/constant"
	"github.com/tunesearch-cli/tunesearch/icon"
	"github.com/tunesearch-cli/tunesearch/key"
	"github.com/tunesearch-cli/tunesearch/log"
	"github.com/tunesearch-cli/tunesearch/mini"
	"github.com/tunesearch-cli/tunesearch/style"
	"github.com/tunesearch-cli/tunesearch/util"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("country", "C", "", "Two-letter store country to search in")
	lo.Must0(viper.BindPFlag(key.ItunesCountry, rootCmd.PersistentFlags().Lookup("country")))

	rootCmd.PersistentFlags().StringP("media", "m", "", "Media type to search for (e.g., music, movie, all)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("media", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"movie", "podcast", "music", "musicVideo", "audiobook", "shortFilm", "tvShow", "software", "ebook", "all"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ItunesMedia, rootCmd.PersistentFlags().Lookup("media")))

	rootCmd.PersistentFlags().IntP("limit", "L", 0, "Number of results to request, from 1 to 200")
	lo.Must0(viper.BindPFlag(key.ItunesLimit, rootCmd.PersistentFlags().Lookup("limit")))
}

// rootCmd starts the interactive search loop.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Search the iTunes catalog for songs, movies and more from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Search the iTunes catalog for songs, movies and more from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		heading, width := listingStyle()
		handleErr(mini.Run(&mini.Options{
			Heading: heading,
			Width:   width,
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// minListingWidth keeps the entry number and a few characters visible on narrow terminals.
const minListingWidth = 24

// listingStyle decorates headings when colors are on and fits lines to the terminal.
func listingStyle() (heading func(string) string, width int) {
	if viper.GetBool(key.CliColored) {
		heading = style.Heading
	}

	if viper.GetBool(key.PrintTruncate) && util.IsTerminal(os.Stdout) {
		if w, _, err := util.TerminalSize(); err == nil {
			width = util.Max(w, minListingWidth)
		}
	}

	return heading, width
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
