// Package cmd contains all CLI commands for speedread.
package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/f3rmion/speedread/internal/config"
	"github.com/f3rmion/speedread/internal/history"
	"github.com/f3rmion/speedread/internal/reader"
	"github.com/f3rmion/speedread/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile   string
	textFile  string
	logCloser func() error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speedread",
	Short: "Speed reading trainer for the terminal",
	Long: `speedread is a terminal trainer for reading faster.

Two display modes are available:
  - Word by word: one word at a time at the chosen words/min
  - Scrolling line: the text slides past one character at a time at chars/min

Speed ranges from 100 to 3000 units per minute. Finished runs are
recorded in a local history database.

Running 'speedread' without arguments launches the interactive TUI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/speedread)")
	rootCmd.PersistentFlags().Bool("verbose", false, "write debug logs to speedread.log in the config directory")

	rootCmd.PersistentFlags().Int("speed", 0, "initial speed in units per minute (100-3000)")
	rootCmd.PersistentFlags().String("mode", "", "display mode: words or scroll")
	rootCmd.PersistentFlags().Bool("scroll-only", false, "hide the mode selector and always scroll")
	rootCmd.PersistentFlags().Int("text", 0, "id of the text selected on startup")
	rootCmd.PersistentFlags().StringVar(&textFile, "file", "", "read a plain text file and select it")
	rootCmd.PersistentFlags().Bool("big", false, "render words as large block glyphs")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("speed", rootCmd.PersistentFlags().Lookup("speed"))
	viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("scroll_only", rootCmd.PersistentFlags().Lookup("scroll-only"))
	viper.BindPFlag("text_id", rootCmd.PersistentFlags().Lookup("text"))
	viper.BindPFlag("big_words", rootCmd.PersistentFlags().Lookup("big"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("SPEEDREAD")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func setup(cmd *cobra.Command, args []string) error {
	closer, err := setupLogging(getConfigDir(), viper.GetBool("verbose"))
	if err != nil {
		return err
	}
	logCloser = closer
	log.Debug("Using config directory", "path", getConfigDir())
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logCloser != nil {
		logCloser()
		logCloser = nil
	}
}

// loadConfig reads config.yaml and applies env and flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		log.Warn("Could not parse configuration file", "err", err)
	}
	return applyOverrides(viper.GetViper(), cfg)
}

// runTUI launches the trainer.
func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the trainer needs a terminal; use 'speedread list' or 'speedread history' for plain output")
	}

	configDir := getConfigDir()
	cfg := loadConfig()

	registry, selected, err := buildRegistry(configDir, cfg, textFile)
	if err != nil {
		return err
	}
	if selected != 0 {
		cfg.TextID = selected
	}

	ctrl := reader.New(registry, reader.Options{
		Mode:       cfg.ReaderMode(),
		Speed:      cfg.Speed,
		TextID:     cfg.TextID,
		ScrollOnly: cfg.ScrollOnly,
	})
	log.Debug("Starting reader",
		"texts", registry.Len(),
		"text", ctrl.Text().ID,
		"mode", ctrl.Mode(),
		"speed", ctrl.Speed())

	opts := tui.Options{
		BigWords:    cfg.BigWords,
		ScrollWidth: cfg.ScrollWidth,
		Config:      cfg,
		ConfigDir:   configDir,
	}
	if cfg.TextsFile != "" {
		opts.TextsFile = config.ResolvePath(configDir, cfg.TextsFile)
	}
	if cfg.History {
		store, err := openHistory(configDir)
		if err != nil {
			log.Warn("History disabled", "err", err)
		} else {
			defer store.Close()
			opts.History = store
		}
	}

	p := tea.NewProgram(
		tui.NewApp(ctrl, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// openHistory opens the history database, creating the config dir if needed.
func openHistory(configDir string) (*history.Store, error) {
	if err := config.EnsureConfigDir(configDir); err != nil {
		return nil, err
	}
	return history.Open(config.ResolvePath(configDir, config.HistoryFile))
}
