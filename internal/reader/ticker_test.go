package reader

import (
	"testing"
	"time"
)

func TestTickerIdleDoesNotArm(t *testing.T) {
	var tk Ticker
	c := newTestController("a b c", ModeWords, 0)

	if cmd := tk.Sync(c.Deps(), c.Interval()); cmd != nil {
		t.Error("idle controller should not arm the timer")
	}
	if tk.Armed() {
		t.Error("ticker armed while idle")
	}
}

func TestTickerArmsOnPlay(t *testing.T) {
	var tk Ticker
	c := newTestController("a b c", ModeWords, 3000)
	c.Toggle()

	cmd := tk.Sync(c.Deps(), c.Interval())
	if cmd == nil || !tk.Armed() {
		t.Fatal("expected timer armed when playing")
	}
	if again := tk.Sync(c.Deps(), c.Interval()); again != nil {
		t.Error("unchanged deps must not arm a second timer")
	}

	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg")
	}
	if !tk.Accept(msg) {
		t.Error("expected live tick to be accepted")
	}
	if tk.Accept(msg) {
		t.Error("a tick must only be consumed once")
	}
}

func TestTickerDropsStaleTicks(t *testing.T) {
	var tk Ticker
	c := newTestController("a b c", ModeWords, 3000)
	c.Toggle()

	first := tk.Sync(c.Deps(), c.Interval())
	c.SetSpeed(2000)
	second := tk.Sync(c.Deps(), c.Interval())
	if second == nil {
		t.Fatal("speed change while playing should re-arm")
	}

	stale := first().(TickMsg)
	if tk.Accept(stale) {
		t.Error("tick from torn-down timer was accepted")
	}
	live := second().(TickMsg)
	if !tk.Accept(live) {
		t.Error("tick from re-armed timer was rejected")
	}
}

func TestTickerStopsOnPause(t *testing.T) {
	var tk Ticker
	c := newTestController("a b c", ModeWords, 3000)
	c.Toggle()
	cmd := tk.Sync(c.Deps(), c.Interval())

	c.Toggle()
	if tk.Sync(c.Deps(), c.Interval()) != nil {
		t.Error("pausing should not arm a timer")
	}
	if tk.Accept(cmd().(TickMsg)) {
		t.Error("tick after pause was accepted")
	}
}

func TestTickerDrivesPlaythrough(t *testing.T) {
	var tk Ticker
	c := newTestController("a b c", ModeWords, 3000)
	c.Toggle()

	cmd := tk.Sync(c.Deps(), c.Interval())
	var words []string
	words = append(words, c.Word())
	finished := false
	for i := 0; i < 10 && cmd != nil; i++ {
		msg := cmd().(TickMsg)
		if !tk.Accept(msg) {
			t.Fatalf("tick %d rejected", i)
		}
		finished = c.Tick()
		if !finished {
			words = append(words, c.Word())
		}
		cmd = tk.Sync(c.Deps(), c.Interval())
	}

	if !finished {
		t.Fatal("expected playback to finish")
	}
	if got := len(words); got != 3 || words[0] != "a" || words[2] != "c" {
		t.Errorf("unexpected words %v", words)
	}
	if tk.Armed() {
		t.Error("timer still armed after playback finished")
	}
}

func TestTickerStop(t *testing.T) {
	var tk Ticker
	cmd := tk.Next(time.Millisecond)
	tk.Stop()
	if tk.Accept(cmd().(TickMsg)) {
		t.Error("tick after Stop was accepted")
	}
}
