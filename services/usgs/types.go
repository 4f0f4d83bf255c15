package usgs

import (
	"context"
	"disaster-map/models/entities"
	"disaster-map/services/feeds"
)

const (
	queryPath = "/fdsnws/event/1/query"
	// Turkey bounding box, newest first.
	queryString = "format=geojson" +
		"&minlatitude=35.8&maxlatitude=42.1&minlongitude=25.0&maxlongitude=45.0" +
		"&minmagnitude=2.5&orderby=time&limit=50"
)

type FeatureCollection struct {
	Type     string     `json:"type"`
	Features *[]Feature `json:"features"`
}

type Feature struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry coordinates are [longitude, latitude, depth].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Properties struct {
	Mag   float64 `json:"mag"`
	Place string  `json:"place"`
	Time  int64   `json:"time"`
}

type Service interface {
	FetchQuakes(ctx context.Context) ([]entities.QuakeRecord, error)
}

type Impl struct {
	endpoint string
	client   feeds.Doer
}
