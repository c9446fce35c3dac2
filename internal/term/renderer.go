package term

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"doomfire/internal/core"
	"doomfire/internal/sims/fire"
)

// upperHalf packs two grid rows into one terminal cell: the rune foreground
// shows the top row, the cell background the bottom row.
const upperHalf = '▀'

// pollInterval is how often the render loop wakes to check the tick governor.
const pollInterval = time.Second / 240

// Renderer drives a fire simulation on a tcell screen. It owns the timing
// loop; the simulation itself never throttles.
type Renderer struct {
	screen tcell.Screen
	cfg    fire.Config
	field  *fire.Field
	step   *core.FixedStep

	xterm     []uint8
	truecolor bool
	paused    bool

	onTick func(*fire.Field)
}

// NewRenderer initializes the terminal and constructs a field sized to it.
func NewRenderer(cfg fire.Config, tps int) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	r := &Renderer{
		screen:    screen,
		cfg:       cfg,
		step:      core.NewFixedStep(tps),
		xterm:     fire.XTerm256Palette(),
		truecolor: screen.Colors() >= 1<<24,
	}
	if err := r.rebuildField(); err != nil {
		screen.Fini()
		return nil, err
	}
	return r, nil
}

// SetTickHook installs a function invoked after every simulation tick, e.g.
// to follow the fire's heat with an audio level.
func (r *Renderer) SetTickHook(fn func(*fire.Field)) {
	r.onTick = fn
}

// rebuildField reconstructs the simulation at the current terminal size.
// A resize is a fresh field with a cleared grid, not a resample.
func (r *Renderer) rebuildField() error {
	w, h := r.screen.Size()
	cfg := r.cfg
	cfg.Width = w
	cfg.Height = h * 2
	field, err := fire.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	r.field = field
	r.screen.Clear()
	return nil
}

// Run executes the event and tick loop until the user quits. It restores the
// terminal on return.
func (r *Renderer) Run() error {
	defer r.screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			quit, err := r.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			if r.paused || !r.step.ShouldStep() {
				continue
			}
			r.field.Step()
			if r.onTick != nil {
				r.onTick(r.field)
			}
			r.draw()
		}
	}
}

func (r *Renderer) handleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		if err := r.rebuildField(); err != nil {
			return false, err
		}
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return true, nil
		case ev.Rune() == ' ':
			r.paused = !r.paused
			if r.paused {
				r.step.Pause()
			}
		case ev.Rune() == 'r':
			r.field.Reset(r.cfg.Seed)
			r.screen.Clear()
		}
	}
	return false, nil
}

// draw pushes the current frame to the screen. tcell diffs cell contents
// internally, so unchanged regions cost nothing on the wire.
func (r *Renderer) draw() {
	size := r.field.Size()
	w := size.W
	rows := size.H / 2
	frame := r.field.Frame()
	cells := r.field.Cells()

	for cy := 0; cy < rows; cy++ {
		top := (cy * 2) * w
		bottom := top + w
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(r.cellColor(frame, cells, top+x)).
				Background(r.cellColor(frame, cells, bottom+x))
			r.screen.SetContent(x, cy, upperHalf, nil, style)
		}
	}
	r.screen.Show()
}

// cellColor picks the truecolor frame value, or the reduced xterm-256
// palette entry when the terminal cannot show 24-bit color.
func (r *Renderer) cellColor(frame []color.RGBA, cells []uint8, idx int) tcell.Color {
	if r.truecolor {
		c := frame[idx]
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(r.xterm[cells[idx]]))
}
