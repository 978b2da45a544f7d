package cmd

import (
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:     "read [file]",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the reader, optionally on a text file",
	Long: `Launch the interactive reader. When a file is given it is added to
the library and selected.

Controls:
  Space   Start / pause
  r       Reset
  m       Switch mode
  1-5     Speed presets
  ?       Help

Example:
  speedread read notes.txt --speed 400`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		textFile = args[0]
	}
	return runTUI(cmd, args)
}
