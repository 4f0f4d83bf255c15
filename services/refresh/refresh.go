package refresh

import (
	"context"
	"disaster-map/models/constants"
	"disaster-map/pkg/observer"
	"disaster-map/services/eonet"
	"disaster-map/services/presenter"
	"disaster-map/services/usgs"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// New registers the refresh job on scheduler. The job fires as soon as the
// scheduler starts, then every interval; a cycle still running when the next
// tick comes delays that tick instead of overlapping it.
func New(scheduler gocron.Scheduler, interval time.Duration,
	quakes usgs.Service, events eonet.Service,
	quakePresenter presenter.QuakeService, eventPresenter presenter.EventService) (*Impl, error) {
	service := &Impl{
		quakes:         quakes,
		events:         events,
		quakePresenter: quakePresenter,
		eventPresenter: eventPresenter,
		observers:      map[observer.Observer]struct{}{},
	}

	_, errJob := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { service.RunCycle(context.Background()) }),
		gocron.WithName(jobName),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

// RegisterObserver must be called before the scheduler starts. Observers are
// notified from both pipeline goroutines.
func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

// RunCycle runs both feed pipelines concurrently and returns once both are
// done, quakes first in the result. A call made while another cycle runs
// waits for it to finish first.
func (service *Impl) RunCycle(ctx context.Context) []Outcome {
	service.cycleMu.Lock()
	defer service.cycleMu.Unlock()

	log.Info().Msg("Start refresh cycle")
	outcomes := make([]Outcome, 2)

	var wg conc.WaitGroup
	wg.Go(func() { outcomes[0] = service.refreshQuakes(ctx) })
	wg.Go(func() { outcomes[1] = service.refreshEvents(ctx) })
	wg.Wait()

	service.notify(observer.Event{E: observer.CycleDoneEvent, At: time.Now().UTC()})
	log.Info().Msg("End refresh cycle")
	return outcomes
}

func (service *Impl) refreshQuakes(ctx context.Context) Outcome {
	service.quakePresenter.Loading()

	records, err := service.quakes.FetchQuakes(ctx)
	if err != nil {
		service.quakePresenter.Fail(err)
		return service.failed(constants.FeedQuakes, err)
	}

	markers := service.quakePresenter.Present(records)
	return service.presented(constants.FeedQuakes, markers)
}

func (service *Impl) refreshEvents(ctx context.Context) Outcome {
	service.eventPresenter.Loading()

	records, err := service.events.FetchEvents(ctx)
	if err != nil {
		service.eventPresenter.Fail(err)
		return service.failed(constants.FeedEvents, err)
	}

	markers := service.eventPresenter.Present(records)
	return service.presented(constants.FeedEvents, markers)
}

func (service *Impl) failed(feed string, err error) Outcome {
	service.notify(observer.NewFailedEvent(feed, err))
	return Outcome{Feed: feed, Err: err, Error: err.Error()}
}

func (service *Impl) presented(feed string, markers int) Outcome {
	service.notify(observer.NewPresentedEvent(feed, markers))
	return Outcome{Feed: feed, Markers: markers}
}
