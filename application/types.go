package application

import (
	"disaster-map/services/health"
	"disaster-map/services/refresh"
	"disaster-map/services/web"
	"disaster-map/utils/insights"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler      gocron.Scheduler
	healthService  health.Service
	refreshService refresh.Service
	webService     web.Service
	probes         insights.Probes
}
