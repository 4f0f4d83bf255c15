package observer

import "time"

type EventType int

const (
	FeedPresentedEvent EventType = 1
	FeedFailedEvent    EventType = 2
	CycleDoneEvent     EventType = 3
)

type Event struct {
	E       EventType
	Feed    string
	Records int
	Err     error
	At      time.Time
}

func NewPresentedEvent(feed string, records int) Event {
	return Event{E: FeedPresentedEvent, Feed: feed, Records: records, At: time.Now().UTC()}
}

func NewFailedEvent(feed string, err error) Event {
	return Event{E: FeedFailedEvent, Feed: feed, Err: err, At: time.Now().UTC()}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	RegisterObserver(Observer)
}
