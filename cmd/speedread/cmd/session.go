package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/speedread/internal/config"
	"github.com/f3rmion/speedread/internal/reader"
	"github.com/spf13/viper"
)

// applyOverrides layers env variables and flags from v over cfg.
func applyOverrides(v *viper.Viper, cfg config.Config) config.Config {
	if v.IsSet("speed") {
		cfg.Speed = v.GetInt("speed")
	}
	if v.IsSet("mode") {
		cfg.Mode = v.GetString("mode")
		if _, err := reader.ParseMode(cfg.Mode); err != nil {
			log.Warn("Ignoring display mode", "err", err)
		}
	}
	if v.IsSet("scroll_only") {
		cfg.ScrollOnly = v.GetBool("scroll_only")
	}
	if v.IsSet("text_id") {
		cfg.TextID = v.GetInt("text_id")
	}
	if v.IsSet("big_words") {
		cfg.BigWords = v.GetBool("big_words")
	}
	if v.IsSet("scroll_width") {
		cfg.ScrollWidth = v.GetInt("scroll_width")
	}
	cfg.Normalize()
	return cfg
}

// buildRegistry collects the built-in texts, the user's texts file and an
// optional plain text file. It returns the id assigned to file, or 0.
func buildRegistry(configDir string, cfg config.Config, file string) (*reader.Registry, int, error) {
	texts := reader.DefaultTexts()
	var unnumbered []reader.SampleText

	if cfg.TextsFile != "" {
		path := config.ResolvePath(configDir, cfg.TextsFile)
		extra, err := config.LoadTexts(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			log.Warn("Could not load texts file", "path", path, "err", err)
		default:
			log.Debug("Loaded texts file", "path", path, "texts", len(extra))
			for _, t := range extra {
				if t.ID <= 0 {
					unnumbered = append(unnumbered, t)
					continue
				}
				texts = append(texts, t)
			}
		}
	}

	registry := reader.NewRegistry(texts...)
	// Texts without an id take the next free one after the numbered texts.
	for _, t := range unnumbered {
		if _, ok := registry.Add(t); !ok {
			log.Warn("Skipping empty text", "title", t.Title)
		}
	}
	if file == "" {
		return registry, 0, nil
	}

	t, err := config.LoadTextFile(file, 0)
	if err != nil {
		return nil, 0, err
	}
	t, _ = registry.Add(t)

	return registry, t.ID, nil
}
