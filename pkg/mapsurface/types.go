package mapsurface

import (
	"disaster-map/models/entities"
	"sync"
)

// Surface is the map view shared by both feeds. Layers are addressed by id,
// markers by the handle returned from AddMarker.
type Surface interface {
	Clear(layerID string)
	AddMarker(layerID string, position entities.Position, icon entities.Icon, popupHTML string) MarkerHandle
	ReplaceLayer(layerID string, specs []MarkerSpec) []MarkerHandle
	Focus(position entities.Position, zoom int)
	OpenPopup(handle MarkerHandle)
	Snapshot() Snapshot
}

type MarkerHandle struct {
	LayerID string `json:"layerId"`
	ID      int    `json:"id"`
}

// IsZero reports whether the handle points to no marker.
func (h MarkerHandle) IsZero() bool {
	return h.ID == 0
}

type View struct {
	Center entities.Position `json:"center"`
	Zoom   int               `json:"zoom"`
}

type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// MarkerSpec is a marker not yet placed on the surface.
type MarkerSpec struct {
	Position  entities.Position
	Icon      entities.Icon
	PopupHTML string
}

// Marker ids identify a marker for popups and are never reused; they are
// not part of the rendered content, so presenting the same records twice
// yields the same markers under new ids.
type Marker struct {
	ID        int               `json:"id"`
	Position  entities.Position `json:"position"`
	Icon      entities.Icon     `json:"icon"`
	PopupHTML string            `json:"popup"`
}

type LayerSnapshot struct {
	ID      string   `json:"id"`
	Markers []Marker `json:"markers"`
}

type Snapshot struct {
	View      View            `json:"view"`
	Tiles     TileLayer       `json:"tiles"`
	Layers    []LayerSnapshot `json:"layers"`
	OpenPopup int             `json:"openPopup,omitempty"`
}

type Impl struct {
	mu         sync.RWMutex
	view       View
	tiles      TileLayer
	layerOrder []string
	layers     map[string][]Marker
	nextID     int
	openPopup  MarkerHandle
}
