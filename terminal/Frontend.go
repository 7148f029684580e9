package terminal

import (
	"sync"
	"time"

	"PongGL/core"

	"github.com/gdamore/tcell"
)

const CellSymbol = 0x2588 // 方塊符號

type action int

const (
	leftUp action = iota
	leftDown
	rightUp
	rightDown
	actionCount
)

// NewScreen creates and initialises the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

// Frontend plays the game in a terminal. It is the game's input, resize source and
// surface at once: the canvas it presents is the software device's triangle sink.
//
// Terminals only report key presses and repeats, so a key counts as held for
// KeyHold after its last event.
type Frontend struct {
	screen tcell.Screen
	canvas *Canvas

	cellWidth, cellHeight float32
	hold                  time.Duration
	interval              time.Duration

	now   func() time.Time
	sleep func(time.Duration)

	mu      sync.Mutex
	pressed [actionCount]time.Time
	quit    bool
	resized bool
	cols    int
	rows    int

	deadline time.Time
}

func NewFrontend(screen tcell.Screen, s core.Settings) *Frontend {
	cols, rows := screen.Size()
	return &Frontend{
		screen:     screen,
		canvas:     NewCanvas(cols, rows),
		cellWidth:  s.CellWidth,
		cellHeight: s.CellHeight,
		hold:       s.KeyHold,
		interval:   s.FrameInterval(),
		now:        time.Now,
		sleep:      time.Sleep,
		cols:       cols,
		rows:       rows,
	}
}

func (f *Frontend) Canvas() *Canvas {
	return f.canvas
}

// FieldSize returns the playing field covered by the current terminal.
func (f *Frontend) FieldSize() (width, height float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldSize()
}

func (f *Frontend) fieldSize() (float32, float32) {
	return float32(f.cols) * f.cellWidth, float32(f.rows) * f.cellHeight
}

// Listen starts the goroutine that feeds terminal events into the frontend. It
// ends once the screen is finalised.
func (f *Frontend) Listen() {
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			f.HandleEvent(ev)
		}
	}()
}

func (f *Frontend) HandleEvent(ev tcell.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.cols, f.rows = ev.Size()
		f.resized = true

	case *tcell.EventKey:
		at := f.now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			f.quit = true
		case tcell.KeyUp:
			f.pressed[rightUp] = at
		case tcell.KeyDown:
			f.pressed[rightDown] = at
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'W':
				f.pressed[leftUp] = at
			case 's', 'S':
				f.pressed[leftDown] = at
			case 'q', 'Q':
				f.quit = true
			}
		}
	}
}

// Poll returns the keys held right now.
func (f *Frontend) Poll() core.Controls {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	held := func(a action) bool {
		at := f.pressed[a]
		return !at.IsZero() && now.Sub(at) < f.hold
	}

	var c core.Controls
	c.Up[core.Left] = held(leftUp)
	c.Down[core.Left] = held(leftDown)
	c.Up[core.Right] = held(rightUp)
	c.Down[core.Right] = held(rightDown)
	c.Quit = f.quit
	return c
}

// PendingResize reports a terminal resize since the last call, in field units, and
// resizes the canvas to match.
func (f *Frontend) PendingResize() (float32, float32, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.resized {
		return 0, 0, false
	}
	f.resized = false
	f.canvas.Resize(f.cols, f.rows)

	width, height := f.fieldSize()
	return width, height, true
}

// Present copies the canvas to the screen and waits out the rest of the frame.
func (f *Frontend) Present() error {
	cols, rows := f.canvas.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch := ' '
			if f.canvas.Filled(col, row) {
				ch = CellSymbol
			}
			f.screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		}
	}
	f.screen.Show()

	f.pace()
	return nil
}

func (f *Frontend) pace() {
	if f.interval <= 0 {
		return
	}
	now := f.now()
	if f.deadline.IsZero() || now.After(f.deadline) {
		f.deadline = now
	}
	f.deadline = f.deadline.Add(f.interval)
	if wait := f.deadline.Sub(now); wait > 0 {
		f.sleep(wait)
	}
}

// ShouldClose is always false; quitting goes through the quit key.
func (f *Frontend) ShouldClose() bool {
	return false
}

// Close restores the terminal.
func (f *Frontend) Close() {
	f.screen.Fini()
}
