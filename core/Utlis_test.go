package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "properties"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "properties", env+".properties"), []byte(content), 0o644))
	return dir
}

func TestReadProperties(t *testing.T) {
	dir := writeProperties(t, "test", `
WINDOW_TITLE = pong test
WINDOW_WIDTH = 1024
WINDOW_HEIGHT = 768
FRAME_RATE = 30
KEY_HOLD_MS = 200
`)

	s, err := ReadProperties(dir, "test")
	require.NoError(t, err)

	assert.Equal(t, "pong test", s.Title)
	assert.Equal(t, float32(1024), s.Width)
	assert.Equal(t, float32(768), s.Height)
	assert.Equal(t, 30, s.FrameRate)
	assert.Equal(t, 200*time.Millisecond, s.KeyHold)
	assert.Equal(t, float32(8), s.CellWidth, "unset keys keep their default")
	assert.Equal(t, time.Second/30, s.FrameInterval())
}

func TestReadPropertiesMissingFile(t *testing.T) {
	s, err := ReadProperties(t.TempDir(), "nope")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestReadPropertiesRejectsEmptyField(t *testing.T) {
	dir := writeProperties(t, "bad", "WINDOW_WIDTH = 0\n")

	_, err := ReadProperties(dir, "bad")
	assert.Error(t, err)
}

func TestFrameIntervalUnlimited(t *testing.T) {
	assert.Zero(t, Settings{}.FrameInterval())
}
