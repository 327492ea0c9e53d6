package config

import "github.com/ayoisaiah/lapwatch/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidFrequency = &apperr.Error{
		Message: "%s frequency must be between %v and %v Hz, got %v",
	}

	errInvalidVolume = &apperr.Error{
		Message: "sound volume must be between 0 and 1, got %v",
	}

	errInvalidToneDuration = &apperr.Error{
		Message: "sound duration must be between %v and %v, got %v",
	}

	errInvalidColor = &apperr.Error{
		Message: "accent color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn or error)",
	}

	errInvalidFilename = &apperr.Error{
		Message: "export filename must be a plain file name ending in .csv, got %q",
	}
)
