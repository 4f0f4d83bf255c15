package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ConfigFileName = ".env"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Either "json" or "console".
	LogFormat = "LOG_FORMAT"

	// Port serving the map page and its JSON state.
	WebPort = "WEB_PORT"

	// Probe port.
	ProbePort = "PROBE_PORT"

	// Timeout applied to every upstream call. Duration type.
	HTTPTimeout = "HTTP_TIMEOUT"

	// Period between two refresh cycles. Duration type.
	RefreshInterval = "REFRESH_INTERVAL"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// USGS FDSN event service, without path.
	USGSBaseURL = "USGS_BASE_URL"

	// NASA EONET API, without path.
	EONETBaseURL = "EONET_BASE_URL"

	// Optional directory served under /assets instead of the embedded marker icons.
	AssetsDir = "ASSETS_DIR"

	// IANA zone used to format record timestamps.
	DisplayTimezone = "DISPLAY_TIMEZONE"

	ConsoleLogFormat = "console"

	defaultLogFormat       = "json"
	defaultWebPort         = 8080
	defaultProbePort       = 9090
	defaultHTTPTimeout     = 15 * time.Second
	defaultRefreshInterval = 10 * time.Minute
	defaultHealthCrontab   = "* * * * *"
	defaultUSGSBaseURL     = "https://earthquake.usgs.gov"
	defaultEONETBaseURL    = "https://eonet.gsfc.nasa.gov"
	defaultAssetsDir       = ""
	defaultDisplayTimezone = "Europe/Istanbul"
	defaultLogLevel        = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		LogLevel:        defaultLogLevel.String(),
		LogFormat:       defaultLogFormat,
		WebPort:         defaultWebPort,
		ProbePort:       defaultProbePort,
		HTTPTimeout:     defaultHTTPTimeout,
		RefreshInterval: defaultRefreshInterval,
		HealthCronTab:   defaultHealthCrontab,
		USGSBaseURL:     defaultUSGSBaseURL,
		EONETBaseURL:    defaultEONETBaseURL,
		AssetsDir:       defaultAssetsDir,
		DisplayTimezone: defaultDisplayTimezone,
	}
}
