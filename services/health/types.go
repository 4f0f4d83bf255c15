package health

import (
	"disaster-map/pkg/observer"
	"sync"
)

type Service interface {
	observer.Observer
	LastEvents() map[string]observer.Event
}

type Impl struct {
	mu   sync.RWMutex
	last map[string]observer.Event
}
