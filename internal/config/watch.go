package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch reloads the config file whenever it changes on disk and passes each
// valid result to onChange. opts are applied after every reload, so options
// that took precedence over the file at startup (such as WithCLIConfig) keep
// it. Invalid edits are logged and skipped. onChange is called from the
// watcher goroutine.
func Watch(configPath string, onChange func(*Config), opts ...Option) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return errReadConfig.Wrap(err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		cfg, err := reload(v, opts...)
		if err != nil {
			slog.Warn("ignoring config change",
				slog.String("file", e.Name),
				slog.Any("error", err),
			)

			return
		}

		slog.Info("config reloaded", slog.String("file", e.Name))

		onChange(cfg)
	})

	v.WatchConfig()

	return nil
}

func reload(v *viper.Viper, opts ...Option) (*Config, error) {
	cfg := &Config{}

	if err := loadViperConfig(v, cfg); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
