package insights

import (
	"disaster-map/pkg/observer"
	"sync"

	"github.com/gofiber/fiber/v2"
)

const (
	livenessPath  = "/health/liveness"
	readinessPath = "/health/readiness"
)

type Probes interface {
	observer.Observer
	IsReady() bool
	ListenAndServe() error
	Shutdown() error
}

type Impl struct {
	mu       sync.RWMutex
	port     int
	expected []string
	reported map[string]struct{}
	app      *fiber.App
}
