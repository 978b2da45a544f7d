package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/speedread/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize speedread configuration",
	Long: `Initialize speedread configuration files in your config directory.

This creates:
  - config.yaml   (default speed, mode and display options)
  - texts.yaml    (your own texts, added to the built-in library)

Edit texts.yaml to practice on your own material.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	if err := writeInitialConfig(configDir, force); err != nil {
		return err
	}

	fmt.Printf("Initializing speedread configuration in %s\n\n", configDir)
	fmt.Printf("  Created %s\n", config.ConfigFile)
	fmt.Printf("  Created %s\n", config.TextsFile)
	fmt.Println()
	fmt.Println("Configuration initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Add your own texts to %s\n", filepath.Join(configDir, config.TextsFile))
	fmt.Println("  2. Run 'speedread list' to see the library")
	fmt.Println("  3. Run 'speedread' to start reading")

	return nil
}

// writeInitialConfig writes config.yaml and the texts template into dir.
func writeInitialConfig(configDir string, force bool) error {
	cfgPath := filepath.Join(configDir, config.ConfigFile)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", cfgPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	if err := config.Save(configDir, config.Defaults()); err != nil {
		return err
	}

	textsPath := filepath.Join(configDir, config.TextsFile)
	if err := os.WriteFile(textsPath, []byte(textsTemplate), 0644); err != nil {
		return fmt.Errorf("writing texts file: %w", err)
	}

	return nil
}

const textsTemplate = `# speedread - Custom Texts
#
# Texts listed here are added to the built-in library.
# Use ids above 5; the built-in texts take 1-5 and
# duplicates are ignored.

texts:
  - id: 100
    title: "Practice"
    body: |
      Replace this paragraph with anything you want to practice on.
      Words are split on whitespace and shown one at a time, or the
      whole text scrolls past one character per tick.
`
