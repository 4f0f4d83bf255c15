package mapsurface

import (
	"disaster-map/models/constants"
	"disaster-map/models/entities"
	"slices"

	"github.com/rs/zerolog/log"
)

// New creates the surface with its base tile layer and one empty overlay per
// layer id, centered at the given position.
func New(center entities.Position, zoom int, tiles TileLayer, layerIDs ...string) *Impl {
	surface := &Impl{
		view:   View{Center: center, Zoom: zoom},
		tiles:  tiles,
		layers: make(map[string][]Marker, len(layerIDs)),
	}
	for _, id := range layerIDs {
		surface.addLayer(id)
	}

	log.Info().
		Float64("lat", center.Lat).
		Float64("lng", center.Lng).
		Int("zoom", zoom).
		Strs(constants.LogLayerID, layerIDs).
		Msg("Map surface initialized")
	return surface
}

func (s *Impl) addLayer(id string) {
	if _, exists := s.layers[id]; exists {
		return
	}
	s.layers[id] = nil
	s.layerOrder = append(s.layerOrder, id)
}

func (s *Impl) Clear(layerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.layers[layerID]) == 0 {
		return
	}
	s.layers[layerID] = nil
	if s.openPopup.LayerID == layerID {
		s.openPopup = MarkerHandle{}
	}
}

func (s *Impl) AddMarker(layerID string, position entities.Position, icon entities.Icon, popupHTML string) MarkerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLayer(layerID)
	return s.place(layerID, MarkerSpec{Position: position, Icon: icon, PopupHTML: popupHTML})
}

// ReplaceLayer swaps the whole marker set of a layer in one step. Readers
// see either the previous set or the new one, never a mix.
func (s *Impl) ReplaceLayer(layerID string, specs []MarkerSpec) []MarkerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLayer(layerID)
	s.layers[layerID] = make([]Marker, 0, len(specs))
	if s.openPopup.LayerID == layerID {
		s.openPopup = MarkerHandle{}
	}

	handles := make([]MarkerHandle, 0, len(specs))
	for _, spec := range specs {
		handles = append(handles, s.place(layerID, spec))
	}
	return handles
}

func (s *Impl) place(layerID string, spec MarkerSpec) MarkerHandle {
	s.nextID++
	s.layers[layerID] = append(s.layers[layerID], Marker{
		ID:        s.nextID,
		Position:  spec.Position,
		Icon:      spec.Icon,
		PopupHTML: spec.PopupHTML,
	})

	return MarkerHandle{LayerID: layerID, ID: s.nextID}
}

func (s *Impl) Focus(position entities.Position, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = View{Center: position, Zoom: zoom}
}

// OpenPopup marks the popup of the handle's marker as open. Handles of
// markers removed by a later Clear are ignored.
func (s *Impl) OpenPopup(handle MarkerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	markers := s.layers[handle.LayerID]
	found := slices.ContainsFunc(markers, func(m Marker) bool { return m.ID == handle.ID })
	if !found {
		log.Debug().Str(constants.LogLayerID, handle.LayerID).Int("markerID", handle.ID).Msg("Stale marker handle, popup not opened")
		return
	}
	s.openPopup = handle
}

func (s *Impl) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layers := make([]LayerSnapshot, 0, len(s.layerOrder))
	for _, id := range s.layerOrder {
		markers := make([]Marker, len(s.layers[id]))
		copy(markers, s.layers[id])
		layers = append(layers, LayerSnapshot{ID: id, Markers: markers})
	}

	return Snapshot{
		View:      s.view,
		Tiles:     s.tiles,
		Layers:    layers,
		OpenPopup: s.openPopup.ID,
	}
}

// Markers returns a copy of the markers currently held by one layer.
func (s *Impl) Markers(layerID string) []Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.layers[layerID])
}

func (s *Impl) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view
}
