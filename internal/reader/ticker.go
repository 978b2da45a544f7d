package reader

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered when the playback timer fires.
type TickMsg struct {
	gen  uint64
	Time time.Time
}

// Ticker is the single playback timer. Bubble Tea timers can't be cancelled,
// so tearing down bumps a generation counter and ticks from older
// generations are dropped on arrival.
type Ticker struct {
	gen   uint64
	armed bool
	deps  Deps
}

// Sync compares deps with the snapshot the timer was armed for. On change the
// timer is torn down and, if playback is running, re-armed at interval.
func (t *Ticker) Sync(deps Deps, interval time.Duration) tea.Cmd {
	if deps == t.deps && (t.armed == deps.Playing) {
		return nil
	}
	t.deps = deps
	t.Stop()
	if !deps.Playing {
		return nil
	}
	return t.Next(interval)
}

// Next arms the timer for one more tick in the current generation.
func (t *Ticker) Next(interval time.Duration) tea.Cmd {
	t.armed = true
	gen := t.gen
	return tea.Tick(interval, func(now time.Time) tea.Msg {
		return TickMsg{gen: gen, Time: now}
	})
}

// Accept reports whether msg belongs to the live timer and consumes it. The
// next Sync re-arms the timer while playback keeps running.
func (t *Ticker) Accept(msg TickMsg) bool {
	if !t.armed || msg.gen != t.gen {
		return false
	}
	t.armed = false
	return true
}

// Stop tears the timer down. Ticks already in flight become stale.
func (t *Ticker) Stop() {
	t.gen++
	t.armed = false
}

// Armed reports whether a live tick is pending.
func (t *Ticker) Armed() bool {
	return t.armed
}
