package health

import (
	"disaster-map/models/constants"
	"disaster-map/pkg/observer"
	"maps"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

func New(scheduler gocron.Scheduler, cronTab string) (*Impl, error) {
	service := &Impl{last: map[string]observer.Event{}}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(cronTab, false),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

func (service *Impl) OnNotify(e observer.Event) {
	if e.Feed == "" {
		return
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	service.last[e.Feed] = e
}

func (service *Impl) LastEvents() map[string]observer.Event {
	service.mu.RLock()
	defer service.mu.RUnlock()

	return maps.Clone(service.last)
}

func (service *Impl) echo() {
	entry := log.Info()
	for feed, e := range service.LastEvents() {
		if e.E == observer.FeedFailedEvent {
			entry = entry.Str(feed, "failed at "+e.At.Format(constants.DisplayTimeFormat))
		} else {
			entry = entry.Int(feed, e.Records)
		}
	}
	entry.Msg("Application is running")
}
