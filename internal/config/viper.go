package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keySoundFrequency       = "sound.frequency"
	keySoundVolume          = "sound.volume"
	keySoundDuration        = "sound.duration"
	keyHapticFrequency      = "haptic.frequency"
	keyExportDir            = "export.dir"
	keyExportFilename       = "export.filename"
	keyExportCmd            = "export.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyAccentColor          = "display.accent_color"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing one with the defaults if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		c.System.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keySoundFrequency, 880)
	v.SetDefault(keySoundVolume, 0.15)
	v.SetDefault(keySoundDuration, "130ms")
	v.SetDefault(keyHapticFrequency, 220)
	v.SetDefault(keyExportDir, "")
	v.SetDefault(keyExportFilename, "lap_times.csv")
	v.SetDefault(keyExportCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyAccentColor, "#B0DB43")
	v.SetDefault(keyLogLevel, "info")
}

// loadViperConfig copies the merged file and default values into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
