package config

import "github.com/ayoisaiah/countdown/internal/apperr"

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

	errUnknownAlertSound = &apperr.Error{
		Message: "unknown alert sound: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidVolume = &apperr.Error{
		Message: "alert volume must be between 0 and 1, got %v",
	}

	errNegativePreset = &apperr.Error{
		Message: "preset %s must not be negative, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}
)
