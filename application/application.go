package application

import (
	"disaster-map/models/constants"
	"disaster-map/pkg/listpanel"
	"disaster-map/pkg/mapsurface"
	"disaster-map/services/eonet"
	"disaster-map/services/feeds"
	"disaster-map/services/health"
	"disaster-map/services/presenter"
	"disaster-map/services/refresh"
	"disaster-map/services/usgs"
	"disaster-map/services/web"
	"disaster-map/utils/dates"
	"disaster-map/utils/insights"
	"sync"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	location, err := dates.LoadLocation(viper.GetString(constants.DisplayTimezone))
	if err != nil {
		return nil, err
	}

	scheduler, errScheduler := gocron.NewScheduler(gocron.WithLocation(location))
	if errScheduler != nil {
		return nil, errScheduler
	}

	surface := mapsurface.New(constants.InitialCenter, constants.InitialZoom,
		mapsurface.TileLayer{URL: constants.TileURL, Attribution: constants.TileAttribution},
		constants.QuakeLayerID, constants.EventLayerID)
	quakePanel := listpanel.New(constants.QuakePanelID, surface)
	eventPanel := listpanel.New(constants.EventPanelID, surface)

	// Fetchers
	client := feeds.NewHTTPClient(viper.GetDuration(constants.HTTPTimeout))
	quakeFetcher := usgs.New(viper.GetString(constants.USGSBaseURL), client)
	eventFetcher := eonet.New(viper.GetString(constants.EONETBaseURL), client)

	// Presenters, sharing one guard with the state endpoint
	guard := &sync.RWMutex{}
	quakePresenter := presenter.NewQuakePresenter(presenter.Target{
		Surface: surface, LayerID: constants.QuakeLayerID, Panel: quakePanel, Location: location, Guard: guard,
	})
	eventPresenter := presenter.NewEventPresenter(presenter.Target{
		Surface: surface, LayerID: constants.EventLayerID, Panel: eventPanel, Location: location, Guard: guard,
	}, eonet.IconForCategory)

	healthService, errHealth := health.New(scheduler, viper.GetString(constants.HealthCronTab))
	if errHealth != nil {
		return nil, errHealth
	}

	refreshService, errRefresh := refresh.New(scheduler, viper.GetDuration(constants.RefreshInterval),
		quakeFetcher, eventFetcher, quakePresenter, eventPresenter)
	if errRefresh != nil {
		return nil, errRefresh
	}

	probes := insights.NewProbes(viper.GetInt(constants.ProbePort), constants.FeedQuakes, constants.FeedEvents)
	refreshService.RegisterObserver(healthService)
	refreshService.RegisterObserver(probes)

	webService := web.New(web.Config{
		Port:      viper.GetInt(constants.WebPort),
		AssetsDir: viper.GetString(constants.AssetsDir),
		Surface:   surface,
		Panels:    []listpanel.Panel{quakePanel, eventPanel},
		Refresher: refreshService,
		Guard:     guard,
	})

	log.Info().
		Str(constants.LogFeedURL, quakeFetcher.Endpoint()).
		Str(constants.LogFeed, constants.FeedQuakes).
		Msg("Feed configured")
	log.Info().
		Str(constants.LogFeedURL, eventFetcher.Endpoint()).
		Str(constants.LogFeed, constants.FeedEvents).
		Msg("Feed configured")

	return &Impl{
		scheduler:      scheduler,
		healthService:  healthService,
		refreshService: refreshService,
		webService:     webService,
		probes:         probes,
	}, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	go func() {
		if err := app.probes.ListenAndServe(); err != nil {
			log.Error().Err(err).Msg("Probes stopped")
		}
	}()
	go func() {
		if err := app.webService.ListenAndServe(); err != nil {
			log.Error().Err(err).Msg("Map page stopped")
		}
	}()
}

func (app *Impl) Shutdown() {
	if err := app.webService.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown map page, continuing...")
	}
	if err := app.probes.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown probes, continuing...")
	}
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	log.Info().Msgf("Application is no longer running")
}
