//go:build gl

// Command pong-gl runs the game in an OpenGL 3.3 window.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"PongGL/core"
	"PongGL/game"
	"PongGL/logger"
	"PongGL/render/opengl"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

// window adapts a GLFW window to game.Input, game.ResizeSource and game.Surface.
type window struct {
	win *glfw.Window
	dev *opengl.Device

	resized       bool
	width, height int
}

func (w *window) Poll() core.Controls {
	pressed := func(k glfw.Key) bool {
		return w.win.GetKey(k) == glfw.Press
	}
	if pressed(glfw.KeyEscape) {
		w.win.SetShouldClose(true)
	}

	var c core.Controls
	c.Up[core.Left] = pressed(glfw.KeyW)
	c.Down[core.Left] = pressed(glfw.KeyS)
	c.Up[core.Right] = pressed(glfw.KeyUp)
	c.Down[core.Right] = pressed(glfw.KeyDown)
	c.Quit = w.win.ShouldClose()
	return c
}

func (w *window) PendingResize() (float32, float32, bool) {
	if !w.resized {
		return 0, 0, false
	}
	w.resized = false
	return float32(w.width), float32(w.height), true
}

func (w *window) framebufferSize(_ *glfw.Window, fbWidth, fbHeight int) {
	w.dev.Viewport(fbWidth, fbHeight)
	w.width, w.height = w.win.GetSize()
	w.resized = true
}

func (w *window) Present() error {
	w.win.SwapBuffers()
	glfw.PollEvents()
	return nil
}

func (w *window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func run(settings core.Settings) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	win, err := glfw.CreateWindow(int(settings.Width), int(settings.Height), settings.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	dev, err := opengl.NewDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	w := &window{win: win, dev: dev}
	fbWidth, fbHeight := win.GetFramebufferSize()
	dev.Viewport(fbWidth, fbHeight)
	win.SetFramebufferSizeCallback(w.framebufferSize)

	width, height := win.GetSize()
	logger.Log.Info(fmt.Sprintf(logger.SettingsMsg, width, height, settings.FrameRate))

	g, err := game.New(dev, w, w, float32(width), float32(height))
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.InvalidGeometryMsg, err))
		return fmt.Errorf("ball mesh: %w", err)
	}
	defer g.Close()

	return g.Run()
}

func main() {
	dir := flag.String("config", "./", "directory holding logger.properties and properties/")
	env := flag.String("env", "local", "properties/<env>.properties to load")
	flag.Parse()

	if err := logger.Log.Init(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Log.Close()

	session := uuid.NewString()
	logger.Log.WithSession(session)
	logger.Log.Info(fmt.Sprintf(logger.WelcomeMsg, session))

	settings, err := core.ReadProperties(*dir, *env)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}

	if err := run(settings); err != nil {
		logger.Log.Fatal(err.Error())
	}
}
