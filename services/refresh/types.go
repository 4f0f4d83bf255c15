package refresh

import (
	"context"
	"disaster-map/pkg/observer"
	"disaster-map/services/eonet"
	"disaster-map/services/presenter"
	"disaster-map/services/usgs"
	"sync"
)

const jobName = "Refresh quakes and events"

// Outcome is the result of one feed pipeline within a cycle.
type Outcome struct {
	Feed    string `json:"feed"`
	Markers int    `json:"markers"`
	Err     error  `json:"-"`
	Error   string `json:"error,omitempty"`
}

type Service interface {
	RunCycle(ctx context.Context) []Outcome
	RegisterObserver(o observer.Observer)
}

type Impl struct {
	quakes         usgs.Service
	events         eonet.Service
	quakePresenter presenter.QuakeService
	eventPresenter presenter.EventService
	observers      map[observer.Observer]struct{}
	cycleMu        sync.Mutex
}
