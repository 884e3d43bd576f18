// Readerstyle is a terminal article reader with a collapsible settings panel.
//
// The panel edits a draft of the reading configuration (font, size, colours
// and column width). Nothing changes on the page until the draft is applied;
// closing the panel keeps the draft for next time. Applied configurations
// can be mirrored to browsers through an optional preview hub.
//
// Usage:
//
//	readerstyle [command] [flags]
//
// Running without arguments opens the reader.
// See 'readerstyle --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/readerstyle/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "readerstyle",
	Short: "Terminal reader with a styling panel",
	Long: `A terminal article reader with a collapsible "Set parameters" panel.

Open the panel with the arrow in the top-left corner or the tab key. Changes
made in the panel are a draft until you apply them. Escape or a click outside
the panel closes it without losing the draft.

If no command is specified, the reader opens automatically.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE:         runReader,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("readerstyle %s\n", version.Full())
	},
}
