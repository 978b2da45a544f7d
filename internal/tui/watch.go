package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/f3rmion/speedread/internal/config"
	"github.com/f3rmion/speedread/internal/reader"
	"github.com/fsnotify/fsnotify"
)

type textsChangedMsg struct{}

// textsWatcher reports writes to the user's texts file. The parent
// directory is watched since editors often replace the file on save.
type textsWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

func newTextsWatcher(path string) (*textsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	log.Debug("fsnotify watching dir", "dir", dir)
	return &textsWatcher{path: filepath.Clean(path), watcher: w}, nil
}

// wait blocks until the texts file changes. It returns nil once the
// watcher is closed.
func (w *textsWatcher) wait() tea.Msg {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("fsnotify event", "file", event.Name, "event", event.Op)
			return textsChangedMsg{}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Debug("fsnotify error", "path", w.path, "error", err)
		}
	}
}

func (w *textsWatcher) Close() error {
	return w.watcher.Close()
}

// mergeTexts adds texts from path whose ids are not registered yet.
// Existing texts are never replaced so a running session keeps its body.
// Texts without an id cannot be matched across reloads and are skipped.
func mergeTexts(reg *reader.Registry, path string) (int, error) {
	texts, err := config.LoadTexts(path)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, t := range texts {
		if _, ok := reg.Get(t.ID); ok || t.ID <= 0 {
			continue
		}
		if _, ok := reg.Add(t); ok {
			added++
		}
	}
	return added, nil
}
