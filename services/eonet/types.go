package eonet

import (
	"context"
	"disaster-map/models/entities"
	"disaster-map/services/feeds"
	"encoding/json"
)

const (
	eventsPath  = "/api/v3/events"
	queryString = "status=open"

	geometryPoint = "Point"
)

type EventsResponse struct {
	Title  string   `json:"title"`
	Events *[]Event `json:"events"`
}

type Event struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Categories []Category `json:"categories"`
	Geometry   []Geometry `json:"geometry"`
}

type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Geometry coordinates are [longitude, latitude] for points; polygons nest
// further and are kept raw.
type Geometry struct {
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type iconRule struct {
	keyword string
	icon    entities.Icon
}

type Service interface {
	FetchEvents(ctx context.Context) ([]entities.DisasterEventRecord, error)
}

type Impl struct {
	endpoint string
	client   feeds.Doer
}
