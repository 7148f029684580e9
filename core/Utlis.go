package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings are the startup values read from properties/<env>.properties. Physics
// constants are not part of it.
type Settings struct {
	Title  string
	Width  float32
	Height float32

	FrameRate int
	// CellWidth/CellHeight 終端機一格對應的場地大小
	CellWidth  float32
	CellHeight float32
	KeyHold    time.Duration
}

// FrameInterval returns the presentation interval for FrameRate.
func (s Settings) FrameInterval() time.Duration {
	if s.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.FrameRate)
}

func DefaultSettings() Settings {
	return Settings{
		Title:      "pong",
		Width:      800,
		Height:     600,
		FrameRate:  60,
		CellWidth:  8,
		CellHeight: 16,
		KeyHold:    120 * time.Millisecond,
	}
}

// ReadProperties loads properties/<env>.properties from dir. A missing file gives
// the defaults, a broken file is an error.
func ReadProperties(dir, env string) (Settings, error) {
	def := DefaultSettings()

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("WINDOW_TITLE", def.Title)
	v.SetDefault("WINDOW_WIDTH", def.Width)
	v.SetDefault("WINDOW_HEIGHT", def.Height)
	v.SetDefault("FRAME_RATE", def.FrameRate)
	v.SetDefault("CELL_WIDTH", def.CellWidth)
	v.SetDefault("CELL_HEIGHT", def.CellHeight)
	v.SetDefault("KEY_HOLD_MS", def.KeyHold.Milliseconds())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read properties %s: %w", env, err)
		}
	}

	s := Settings{
		Title:      cast.ToString(v.Get("WINDOW_TITLE")),
		Width:      cast.ToFloat32(v.Get("WINDOW_WIDTH")),
		Height:     cast.ToFloat32(v.Get("WINDOW_HEIGHT")),
		FrameRate:  cast.ToInt(v.Get("FRAME_RATE")),
		CellWidth:  cast.ToFloat32(v.Get("CELL_WIDTH")),
		CellHeight: cast.ToFloat32(v.Get("CELL_HEIGHT")),
		KeyHold:    time.Duration(cast.ToInt64(v.Get("KEY_HOLD_MS"))) * time.Millisecond,
	}

	if s.Width <= 0 || s.Height <= 0 {
		return Settings{}, fmt.Errorf("read properties %s: field %vx%v must be positive", env, s.Width, s.Height)
	}
	if s.CellWidth <= 0 || s.CellHeight <= 0 {
		return Settings{}, fmt.Errorf("read properties %s: cell %vx%v must be positive", env, s.CellWidth, s.CellHeight)
	}
	return s, nil
}
