package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TimerSettings holds the Pomodoro interval lengths.
type TimerSettings struct {
	Focus          time.Duration
	Break          time.Duration
	TickInterval   time.Duration
	TrackAutoFocus bool
}

type yamlTimerSettings struct {
	FocusMinutes       int  `yaml:"focus_minutes"`
	BreakMinutes       int  `yaml:"break_minutes"`
	TickIntervalMillis int  `yaml:"tick_interval_ms"`
	TrackAutoFocus     bool `yaml:"track_auto_focus"`
}

// DefaultTimerSettings returns the classic 25/5 Pomodoro cycle.
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		Focus:        25 * time.Minute,
		Break:        5 * time.Minute,
		TickInterval: time.Second,
	}
}

// LoadTimerSettings reads timer settings from YAML.
// If the file does not exist, default settings are returned.
func LoadTimerSettings(path string) (TimerSettings, error) {
	settings := DefaultTimerSettings()
	if path == "" {
		return settings, nil
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read timer settings: %w", err)
	}

	var fileData yamlTimerSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse timer settings yaml: %w", err)
	}

	applyYamlTimerSettings(&settings, fileData)
	return settings, nil
}

// SaveTimerSettings writes timer settings to YAML.
func SaveTimerSettings(path string, settings TimerSettings) error {
	fileData := yamlTimerSettings{
		FocusMinutes:       int(settings.Focus / time.Minute),
		BreakMinutes:       int(settings.Break / time.Minute),
		TickIntervalMillis: int(settings.TickInterval / time.Millisecond),
		TrackAutoFocus:     settings.TrackAutoFocus,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal timer settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write timer settings: %w", err)
	}
	return nil
}

func applyYamlTimerSettings(settings *TimerSettings, fileData yamlTimerSettings) {
	if fileData.FocusMinutes > 0 {
		settings.Focus = time.Duration(fileData.FocusMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.Break = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	settings.TrackAutoFocus = fileData.TrackAutoFocus
}
