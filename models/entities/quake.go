package entities

import "time"

type QuakeRecord struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	DepthKm   float64   `json:"depthKm"`
	Magnitude float64   `json:"magnitude"`
	Place     string    `json:"place"`
	Time      time.Time `json:"time"`
}

func (q QuakeRecord) Position() Position {
	return Position{Lat: q.Latitude, Lng: q.Longitude}
}
