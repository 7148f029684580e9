package terminal

import (
	"testing"
	"time"

	"PongGL/core"
	"PongGL/render"

	"github.com/gdamore/tcell"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
}

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)

	clock := &fakeClock{t: time.Unix(1000, 0)}
	f := NewFrontend(screen, core.DefaultSettings())
	f.now = clock.now
	f.sleep = clock.sleep
	return f, screen, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestFrontendKeysStayHeld(t *testing.T) {
	f, _, clock := newTestFrontend(t)

	f.HandleEvent(key('w'))
	f.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))

	c := f.Poll()
	assert.True(t, c.Up[core.Left])
	assert.True(t, c.Down[core.Right])
	assert.False(t, c.Down[core.Left])
	assert.False(t, c.Up[core.Right])
	assert.False(t, c.Quit)

	clock.t = clock.t.Add(100 * time.Millisecond)
	assert.True(t, f.Poll().Up[core.Left])

	clock.t = clock.t.Add(50 * time.Millisecond)
	assert.Equal(t, core.Controls{}, f.Poll())
}

func TestFrontendQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		f, _, _ := newTestFrontend(t)
		f.HandleEvent(ev)
		assert.True(t, f.Poll().Quit, ev.Name())
	}
}

func TestFrontendResize(t *testing.T) {
	f, _, _ := newTestFrontend(t)

	width, height := f.FieldSize()
	assert.Equal(t, float32(160), width)
	assert.Equal(t, float32(160), height)

	_, _, ok := f.PendingResize()
	assert.False(t, ok)

	f.HandleEvent(tcell.NewEventResize(100, 30))
	width, height, ok = f.PendingResize()
	require.True(t, ok)
	assert.Equal(t, float32(800), width)
	assert.Equal(t, float32(480), height)

	cols, rows := f.Canvas().Size()
	assert.Equal(t, 100, cols)
	assert.Equal(t, 30, rows)

	_, _, ok = f.PendingResize()
	assert.False(t, ok, "a resize is reported once")
}

func TestFrontendPresent(t *testing.T) {
	f, screen, clock := newTestFrontend(t)

	dev := render.NewSoftwareDevice(f.Canvas())
	dev.Clear()
	f.Canvas().Triangle(render.Triangle{NDC: [3]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}}})
	f.Canvas().Triangle(render.Triangle{NDC: [3]mgl32.Vec2{{1, 1}, {-1, 1}, {-1, -1}}})

	require.NoError(t, f.Present())

	cells, width, height := screen.GetContents()
	require.Equal(t, 20, width)
	require.Equal(t, 10, height)
	for i, cell := range cells {
		require.NotEmpty(t, cell.Runes, "cell %d", i)
		assert.Equal(t, rune(CellSymbol), cell.Runes[0], "cell %d", i)
	}

	// frames are paced to the configured rate
	require.Len(t, clock.sleeps, 1)
	assert.Equal(t, time.Second/60, clock.sleeps[0])

	require.NoError(t, f.Present())
	assert.Len(t, clock.sleeps, 2)
	assert.False(t, f.ShouldClose())
}

func TestFrontendPaceSkipsWhenLate(t *testing.T) {
	f, _, clock := newTestFrontend(t)

	require.NoError(t, f.Present())
	clock.t = clock.t.Add(time.Second)
	require.NoError(t, f.Present())

	require.Len(t, clock.sleeps, 2)
	assert.Equal(t, time.Second/60, clock.sleeps[1], "a late frame starts a new schedule")
}
