package config

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
)

var (
	minFrequency = 20.0
	maxFrequency = 20000.0

	minToneDuration = 10 * time.Millisecond
	maxToneDuration = 2 * time.Second

	logLevels = []string{"debug", "info", "warn", "error"}

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSound(); err != nil {
		return err
	}

	if c.Haptic.Frequency < minFrequency || c.Haptic.Frequency > maxFrequency {
		return errInvalidFrequency.Fmt("haptic", minFrequency, maxFrequency, c.Haptic.Frequency)
	}

	if err := c.validateExport(); err != nil {
		return err
	}

	if !hexColorRegex.MatchString(c.Display.AccentColor) {
		return errInvalidColor.Fmt(c.Display.AccentColor)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateSound() error {
	s := c.Sound

	if s.Frequency < minFrequency || s.Frequency > maxFrequency {
		return errInvalidFrequency.Fmt("sound", minFrequency, maxFrequency, s.Frequency)
	}

	if s.Volume < 0 || s.Volume > 1 {
		return errInvalidVolume.Fmt(s.Volume)
	}

	if s.Duration < minToneDuration || s.Duration > maxToneDuration {
		return errInvalidToneDuration.Fmt(minToneDuration, maxToneDuration, s.Duration)
	}

	return nil
}

func (c *Config) validateExport() error {
	name := c.Export.Filename

	if name == "" ||
		filepath.Base(name) != name ||
		!strings.EqualFold(filepath.Ext(name), ".csv") {
		return errInvalidFilename.Fmt(name)
	}

	return nil
}
