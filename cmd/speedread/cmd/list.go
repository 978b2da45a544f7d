package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f3rmion/speedread/internal/reader"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available texts",
	Long: `List the texts available to the reader: the built-in library plus
the texts in texts.yaml.

Example:
  speedread list
  speedread --text 3`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	registry, _, err := buildRegistry(getConfigDir(), cfg, "")
	if err != nil {
		return err
	}

	printTexts(os.Stdout, registry)
	return nil
}

func printTexts(w io.Writer, registry *reader.Registry) {
	fmt.Fprintf(w, "%4s  %-32s %7s %7s\n", "ID", "TITLE", "WORDS", "CHARS")
	for _, t := range registry.List() {
		fmt.Fprintf(w, "%4d  %s %7d %7d\n",
			t.ID, runewidth.FillRight(t.Title, 32), len(strings.Fields(t.Body)), reader.ScrollLength(t.Body))
	}
}
