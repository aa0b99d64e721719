// Command draftcli drives the drafting core from the command line: it
// replays pointer/keyboard scripts through the tool machine, runs
// measurements, and exercises the offset engine. Useful for headless
// testing and for generating preview images without a host UI.
package main

import (
	"log/slog"
	"os"

	draft "github.com/draftkit/draft2d"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "draftcli",
	Short: "Headless driver for the draft2d drafting core",
	Long: `draftcli replays YAML event scripts through the drafting tool machine,
runs measurement probes, and applies offset operations to entities,
printing the results and optionally rendering them to PNG.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			draft.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging to stderr")
}
