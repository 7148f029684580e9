package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PongGL/core"
	"PongGL/game"
	"PongGL/logger"
	"PongGL/render"
	"PongGL/terminal"
)

// startLocal plays both paddles on one keyboard in the terminal: W/S for the left
// player, arrow keys for the right one, Esc or Q to quit.
func startLocal(settings core.Settings) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return startupError(logger.ScreenInitMsg, "screen", err)
	}

	frontend := terminal.NewFrontend(screen, settings)
	defer frontend.Close()

	width, height := frontend.FieldSize()
	logger.Log.Info(fmt.Sprintf(logger.SettingsMsg, width, height, settings.FrameRate))

	dev := render.NewSoftwareDevice(frontend.Canvas())
	g, err := game.New(dev, frontend, frontend, width, height)
	if err != nil {
		return startupError(logger.InvalidGeometryMsg, "ball mesh", err)
	}
	defer g.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			g.Stop()
		}
	}()

	frontend.Listen()
	return g.Run()
}

// startupError logs the localized message and keeps err wrapped for the caller.
func startupError(template, stage string, err error) error {
	logger.Log.Error(fmt.Sprintf(template, err))
	return fmt.Errorf("%s: %w", stage, err)
}
