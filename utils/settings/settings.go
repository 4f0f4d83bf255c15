package settings

import (
	"disaster-map/models/constants"
	"disaster-map/utils/dates"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Load registers the defaults, reads the optional config file and lets
// environment variables override both, then checks the resulting values.
func Load(configFile string) error {
	for configName, defaultValue := range constants.GetDefaultConfigValues() {
		viper.SetDefault(configName, defaultValue)
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Debug().Str(constants.LogFileName, configFile).Msgf("Failed to read config file, continue...")
	}

	viper.AutomaticEnv()
	return Validate()
}

// Validate reports every unusable value at once.
func Validate() error {
	var errs []error

	for _, key := range []string{constants.RefreshInterval, constants.HTTPTimeout} {
		if viper.GetDuration(key) <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a positive duration, got %q",
				ErrInvalidConfig, key, viper.GetString(key)))
		}
	}

	for _, key := range []string{constants.WebPort, constants.ProbePort} {
		if port := viper.GetInt(key); port <= 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("%w: %s must be a TCP port, got %q",
				ErrInvalidConfig, key, viper.GetString(key)))
		}
	}
	if viper.GetInt(constants.WebPort) == viper.GetInt(constants.ProbePort) {
		errs = append(errs, fmt.Errorf("%w: %s and %s must differ",
			ErrInvalidConfig, constants.WebPort, constants.ProbePort))
	}

	if _, err := dates.LoadLocation(viper.GetString(constants.DisplayTimezone)); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, constants.DisplayTimezone, err))
	}

	return errors.Join(errs...)
}

// NewLogger writes JSON lines to out, or human readable lines when format is
// "console".
func NewLogger(out io.Writer, format string) zerolog.Logger {
	if format == constants.ConsoleLogFormat {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// InitLog installs the global logger and level from the loaded config. An
// unknown level keeps the fallback.
func InitLog(out io.Writer) {
	log.Logger = NewLogger(out, viper.GetString(constants.LogFormat))
	zerolog.SetGlobalLevel(constants.LogLevelFallback)

	logLevel, err := zerolog.ParseLevel(viper.GetString(constants.LogLevel))
	if err != nil || logLevel == zerolog.NoLevel {
		log.Warn().Err(err).Msgf("Log level not set, continue with %s...", constants.LogLevelFallback)
		return
	}

	zerolog.SetGlobalLevel(logLevel)
	log.Debug().Msgf("Logger level set to '%s'", logLevel)
}
