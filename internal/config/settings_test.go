package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSongsFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if path := settings.GetSongsFile(); path != DefaultSongsFile {
		t.Errorf("Expected default songs file %s, got %s", DefaultSongsFile, path)
	}

	// Test setting custom value
	customPath := "/data/hymnal.json"
	settings.SetSongsFile(customPath)
	if path := settings.GetSongsFile(); path != customPath {
		t.Errorf("Expected songs file %s, got %s", customPath, path)
	}

	// Empty path falls back to the default
	settings.SetSongsFile("")
	if path := settings.GetSongsFile(); path != DefaultSongsFile {
		t.Errorf("Expected songs file %s after empty set, got %s", DefaultSongsFile, path)
	}
}

func TestAutoSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoSave() {
		t.Error("Expected auto-save to default to true")
	}

	settings.SetAutoSave(false)
	if settings.GetAutoSave() {
		t.Error("Expected auto-save to be false after SetAutoSave(false)")
	}
}

func TestDebugLogging(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetDebugLogging() {
		t.Error("Expected debug logging to default to false")
	}

	settings.SetDebugLogging(true)
	if !settings.GetDebugLogging() {
		t.Error("Expected debug logging to be true after SetDebugLogging(true)")
	}
}
