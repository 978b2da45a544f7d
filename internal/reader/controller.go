package reader

import "time"

// Speed limits in units per minute.
const (
	MinSpeed     = 100
	MaxSpeed     = 3000
	SpeedStep    = 100
	DefaultSpeed = 200
)

// Preset is a named speed shortcut.
type Preset struct {
	Label string
	Speed int
}

var presets = []Preset{
	{Label: "Slow", Speed: 200},
	{Label: "Medium", Speed: 500},
	{Label: "Fast", Speed: 1000},
	{Label: "Very fast", Speed: 2000},
	{Label: "Maximum", Speed: 3000},
}

// Presets returns the fixed speed presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Options configures a new Controller.
type Options struct {
	Mode       Mode
	Speed      int
	TextID     int
	ScrollOnly bool // Disables mode switching and forces ModeScroll
}

// Deps is the state the tick timer depends on. Any change tears the timer
// down and re-arms it if playback is still running.
type Deps struct {
	Playing bool
	Speed   int
	Mode    Mode
	Words   int
}

// Controller holds the playback state of the reader.
type Controller struct {
	registry   *Registry
	text       SampleText
	mode       Mode
	speed      int
	playing    bool
	position   int
	scrollOnly bool
	basis      basis
}

// New creates a controller over registry with the first text selected.
func New(registry *Registry, opts Options) *Controller {
	if registry == nil {
		registry = NewRegistry(DefaultTexts()...)
	}

	c := &Controller{
		registry:   registry,
		text:       registry.First(),
		mode:       opts.Mode,
		speed:      DefaultSpeed,
		scrollOnly: opts.ScrollOnly,
	}
	if c.scrollOnly {
		c.mode = ModeScroll
	}
	if opts.Speed != 0 {
		c.speed = clampSpeed(opts.Speed)
	}
	if opts.TextID > 0 {
		if t, ok := registry.Get(opts.TextID); ok {
			c.text = t
		}
	}
	c.rebase()
	return c
}

func clampSpeed(s int) int {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

func (c *Controller) rebase() {
	c.basis = newBasis(c.mode, c.text.Body)
	c.position = 0
}

// Toggle switches between playing and paused. Starting from the terminal
// position restarts the text from the beginning.
func (c *Controller) Toggle() {
	if c.playing {
		c.playing = false
		return
	}
	if c.position >= c.basis.bound() {
		c.position = 0
	}
	c.playing = true
}

// Reset stops playback and rewinds to the start.
func (c *Controller) Reset() {
	c.playing = false
	c.position = 0
}

// SelectText switches to the text with the given id. Unknown ids leave the
// selection unchanged and return false.
func (c *Controller) SelectText(id int) bool {
	t, ok := c.registry.Get(id)
	if !ok {
		return false
	}
	c.text = t
	c.rebase()
	return true
}

// NextText selects the following text in registry order.
func (c *Controller) NextText() {
	c.SelectText(c.registry.Next(c.text.ID).ID)
}

// PrevText selects the preceding text in registry order.
func (c *Controller) PrevText() {
	c.SelectText(c.registry.Prev(c.text.ID).ID)
}

// SetMode changes the display mode. Playback is stopped and progress starts
// over in the new mode.
func (c *Controller) SetMode(m Mode) {
	if c.scrollOnly {
		return
	}
	c.playing = false
	c.mode = m
	c.rebase()
}

// ToggleMode flips between word and scroll modes.
func (c *Controller) ToggleMode() {
	if c.mode == ModeWords {
		c.SetMode(ModeScroll)
	} else {
		c.SetMode(ModeWords)
	}
}

// SetSpeed sets the speed in units per minute, clamped to the allowed range.
func (c *Controller) SetSpeed(s int) {
	c.speed = clampSpeed(s)
}

// StepSpeed moves the speed by n slider steps.
func (c *Controller) StepSpeed(n int) {
	c.SetSpeed(c.speed + n*SpeedStep)
}

// Tick advances playback by one unit. It reports true when the text was
// finished by this tick, in which case playback stops and rewinds.
func (c *Controller) Tick() bool {
	if !c.playing {
		return false
	}
	if c.position >= c.basis.bound() {
		c.playing = false
		c.position = 0
		return true
	}
	c.position++
	return false
}

// Interval returns the time between ticks at the current speed.
func (c *Controller) Interval() time.Duration {
	return Interval(c.speed)
}

// Interval converts units per minute to a tick interval.
func Interval(speed int) time.Duration {
	if speed <= 0 {
		speed = MinSpeed
	}
	return time.Minute / time.Duration(speed)
}

// Deps returns the current timer dependencies.
func (c *Controller) Deps() Deps {
	d := Deps{Playing: c.playing, Speed: c.speed, Mode: c.mode}
	if c.mode == ModeWords {
		d.Words = len(c.basis.words)
	}
	return d
}

// Text returns the selected text.
func (c *Controller) Text() SampleText { return c.text }

// Body returns the body of the selected text.
func (c *Controller) Body() string { return c.text.Body }

// Registry returns the registry the controller selects from.
func (c *Controller) Registry() *Registry { return c.registry }

// Mode returns the display mode.
func (c *Controller) Mode() Mode { return c.mode }

// ScrollOnly reports whether mode switching is disabled.
func (c *Controller) ScrollOnly() bool { return c.scrollOnly }

// Speed returns the speed in units per minute.
func (c *Controller) Speed() int { return c.speed }

// Playing reports whether playback is running.
func (c *Controller) Playing() bool { return c.playing }

// Position returns the current word or character index.
func (c *Controller) Position() int { return c.position }

// Bound returns the terminal position for the current mode.
func (c *Controller) Bound() int { return c.basis.bound() }

// Units returns the number of words or characters in the current basis.
func (c *Controller) Units() int { return c.basis.size() }

// Word returns the word at the current position, or "" outside word mode.
func (c *Controller) Word() string {
	if c.mode != ModeWords {
		return ""
	}
	return c.basis.word(c.position)
}

// Progress returns how far through the text playback is, from 0 to 1.
func (c *Controller) Progress() float64 {
	b := c.basis.bound()
	if b <= 0 {
		return 0
	}
	return float64(c.position) / float64(b)
}
