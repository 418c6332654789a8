package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeySongsFile    = "songs_file"
	KeyAutoSave     = "auto_save"
	KeyDebugLogging = "debug_logging"
)

// Default values
const (
	DefaultSongsFile    = "songs.json"
	DefaultAutoSave     = true
	DefaultDebugLogging = false
)

// Settings manages application configuration for the windowed interface.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSongsFile returns the path of the songs file. The default is relative
// to the invocation directory.
func (s *Settings) GetSongsFile() string {
	path := s.app.Preferences().String(KeySongsFile)
	if path == "" {
		s.SetSongsFile(DefaultSongsFile)
		return DefaultSongsFile
	}
	return path
}

// SetSongsFile sets the songs file path
func (s *Settings) SetSongsFile(path string) {
	if path == "" {
		path = DefaultSongsFile
	}
	s.app.Preferences().SetString(KeySongsFile, path)
}

// GetAutoSave returns whether every mutation flushes to disk immediately
func (s *Settings) GetAutoSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoSave, DefaultAutoSave)
}

// SetAutoSave sets the auto-save behavior
func (s *Settings) SetAutoSave(autoSave bool) {
	s.app.Preferences().SetBool(KeyAutoSave, autoSave)
}

// GetDebugLogging returns whether debug-level logging is enabled
func (s *Settings) GetDebugLogging() bool {
	return s.app.Preferences().BoolWithFallback(KeyDebugLogging, DefaultDebugLogging)
}

// SetDebugLogging sets whether debug-level logging is enabled
func (s *Settings) SetDebugLogging(debug bool) {
	s.app.Preferences().SetBool(KeyDebugLogging, debug)
}
