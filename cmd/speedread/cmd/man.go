package cmd

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

var manCmd = &cobra.Command{
	Use:                   "man",
	Short:                 "Generate man page",
	Hidden:                true,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := manPage()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), page)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manCmd)
}

// manPage renders the roff man page for the whole command tree.
func manPage() (string, error) {
	page, err := mcobra.NewManPage(1, rootCmd)
	if err != nil {
		return "", fmt.Errorf("building man page: %w", err)
	}
	page = page.WithSection("Files", "config.yaml, texts.yaml and history.db live in the config directory.\n"+
		"Set SPEEDREAD_CONFIG_HOME to use another one.")
	return page.Build(roff.NewDocument()), nil
}
