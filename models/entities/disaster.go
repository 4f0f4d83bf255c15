package entities

import "time"

// DisasterEventRecord is one open EONET event. Each occurrence is rendered
// as its own marker and list entry.
type DisasterEventRecord struct {
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Occurrences []Occurrence `json:"occurrences"`
}

type Occurrence struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Time      time.Time `json:"time"`
}

func (o Occurrence) Position() Position {
	return Position{Lat: o.Latitude, Lng: o.Longitude}
}
