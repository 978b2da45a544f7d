package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/f3rmion/speedread/internal/config"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your texts file",
	Long: `Open texts.yaml in your editor. EDITOR decides which editor is used.
If the file doesn't exist, it is created from a template.

A running trainer picks up new texts as soon as the file is saved.`,
	Example: "  speedread edit\n  EDITOR=nano speedread edit",
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		path, err := ensureTextsFile(getConfigDir(), loadConfig())
		if err != nil {
			return err
		}

		c, err := editor.Cmd("speedread", path)
		if err != nil {
			return fmt.Errorf("unable to edit texts file: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run editor: %w", err)
		}

		fmt.Println("Wrote texts file to:", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// ensureTextsFile returns the texts file path, writing the template when
// the file is missing.
func ensureTextsFile(configDir string, cfg config.Config) (string, error) {
	name := cfg.TextsFile
	if name == "" {
		name = config.TextsFile
	}
	path := config.ResolvePath(configDir, name)

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", fmt.Errorf("unable to create directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(textsTemplate), 0644); err != nil {
			return "", fmt.Errorf("writing texts file: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("unable to stat texts file: %w", err)
	}
	return path, nil
}
