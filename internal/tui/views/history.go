package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/f3rmion/speedread/internal/history"
	"golang.org/x/sync/errgroup"
)

const historyLimit = 50

// HistorySource provides finished runs.
type HistorySource interface {
	Recent(ctx context.Context, limit int) ([]history.Run, error)
	Stats(ctx context.Context) (history.Stats, error)
}

type historyLoadedMsg struct {
	runs  []history.Run
	stats history.Stats
	err   error
}

// HistoryModel shows recently finished runs.
type HistoryModel struct {
	source  HistorySource
	runs    []history.Run
	stats   history.Stats
	err     error
	loaded  bool
	scrollY int

	width  int
	height int
}

// NewHistoryModel creates the history view. A nil source disables it.
func NewHistoryModel(source HistorySource) HistoryModel {
	return HistoryModel{source: source}
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh reloads runs from the source.
func (m HistoryModel) Refresh() tea.Cmd {
	if m.source == nil {
		return nil
	}
	src := m.source
	return func() tea.Msg {
		var msg historyLoadedMsg
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() (err error) {
			msg.runs, err = src.Recent(ctx, historyLimit)
			return err
		})
		g.Go(func() (err error) {
			msg.stats, err = src.Stats(ctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.runs = msg.runs
			m.stats = msg.stats
		}
		m.scrollY = 0
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.scrollY < len(m.runs)-1 {
				m.scrollY++
			}
		case "k", "up":
			if m.scrollY > 0 {
				m.scrollY--
			}
		case "g":
			m.scrollY = 0
		}
	}
	return m, nil
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n")

	switch {
	case m.source == nil:
		b.WriteString(mutedStyle.Render("History is disabled"))
		return b.String()
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		return b.String()
	case !m.loaded:
		b.WriteString(mutedStyle.Render("Loading..."))
		return b.String()
	case len(m.runs) == 0:
		b.WriteString(mutedStyle.Render("No finished texts yet"))
		return b.String()
	}

	b.WriteString(labelStyle.Render("Runs") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Runs)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Units") + valueStyle.Render(humanize.Comma(int64(m.stats.Units))))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Fastest") + valueStyle.Render(fmt.Sprintf("%d/min", m.stats.MaxSpeed)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Average") + valueStyle.Render(fmt.Sprintf("%.0f/min", m.stats.AvgSpeed)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Last read") + valueStyle.Render(humanize.Time(m.runs[0].FinishedAt)))
	b.WriteString("\n\n")

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-16s %-24s %-7s %6s %6s", "Finished", "Title", "Mode", "Speed", "Units")))
	b.WriteString("\n")

	visible := max(m.height-14, 3)
	end := min(m.scrollY+visible, len(m.runs))
	for _, r := range m.runs[m.scrollY:end] {
		row := fmt.Sprintf("%-16s %s %-7s %6d %6d",
			r.FinishedAt.Format("2006-01-02 15:04"), padTitle(r.Title, 24), r.Mode, r.Speed, r.Units)
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k: scroll • g: top"))
	return b.String()
}
