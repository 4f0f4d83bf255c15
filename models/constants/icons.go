package constants

import "disaster-map/models/entities"

var (
	QuakeIcon     = entities.NewMarkerIcon("earthquake", "assets/earthquake.svg")
	FireIcon      = entities.NewMarkerIcon("fire", "assets/fire.svg")
	VolcanoIcon   = entities.NewMarkerIcon("volcano", "assets/volcano.svg")
	StormIcon     = entities.NewMarkerIcon("storm", "assets/storm.svg")
	FloodIcon     = entities.NewMarkerIcon("flood", "assets/flood.svg")
	IceIcon       = entities.NewMarkerIcon("ice", "assets/ice.svg")
	DroughtIcon   = entities.NewMarkerIcon("drought", "assets/drought.svg")
	DustIcon      = entities.NewMarkerIcon("dust", "assets/dust.svg")
	LandslideIcon = entities.NewMarkerIcon("landslide", "assets/landslide.svg")
	SnowIcon      = entities.NewMarkerIcon("snow", "assets/snow.svg")
	HeatIcon      = entities.NewMarkerIcon("temperature", "assets/temperature.svg")
	WaterIcon     = entities.NewMarkerIcon("water", "assets/water.svg")
)
