package constants

import "disaster-map/models/entities"

const (
	FeedQuakes = "quakes"
	FeedEvents = "events"

	QuakeLayerID = "quakes"
	EventLayerID = "events"

	QuakePanelID = "quake-list"
	EventPanelID = "event-list"

	QuakeLoadingMessage = "Depremler yükleniyor..."
	QuakeFailureMessage = "Deprem verisi yüklenemedi."
	EventLoadingMessage = "Afetler yükleniyor..."
	EventFailureMessage = "Afet verisi yüklenemedi."

	InitialZoom = 6
	FocusZoom   = 7

	TileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	TileAttribution = "&copy; OpenStreetMap contributors"

	DisplayTimeFormat = "02.01.2006 15:04:05"
)

var InitialCenter = entities.Position{Lat: 39, Lng: 35}
