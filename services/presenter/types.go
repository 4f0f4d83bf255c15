package presenter

import (
	"disaster-map/models/entities"
	"disaster-map/pkg/listpanel"
	"disaster-map/pkg/mapsurface"
	"sync"
	"time"
)

const (
	quakeItemClass = "quake-item"
	eventItemClass = "event-item"
)

type QuakeService interface {
	Loading()
	Present(records []entities.QuakeRecord) int
	Fail(err error)
}

type EventService interface {
	Loading()
	Present(records []entities.DisasterEventRecord) int
	Fail(err error)
}

// Target groups what one feed renders into: its map layer and its list.
// Guard is shared with readers that need the layer and the list to agree;
// it is held for writing while both are swapped.
type Target struct {
	Surface  mapsurface.Surface
	LayerID  string
	Panel    listpanel.Panel
	Location *time.Location
	Guard    *sync.RWMutex
}

type QuakePresenter struct {
	target Target
	icon   entities.Icon
}

type EventPresenter struct {
	target Target
	iconOf func(category string) entities.Icon
}
