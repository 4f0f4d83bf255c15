package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogFeed          = "feed"
	LogFeedURL       = "feedURL"
	LogLayerID       = "layerID"
	LogPanelID       = "panelID"
	LogRecordNumber  = "recordNumber"
	LogMarkerNumber  = "markerNumber"
	LogGeometryType  = "geometryType"
	LogEventTitle    = "eventTitle"
	LogHTTPPort      = "port"
	LogLevelFallback = zerolog.InfoLevel
)
