package entities

// Position is a WGS84 point, latitude first like the map library expects.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
