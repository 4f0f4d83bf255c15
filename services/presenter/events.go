package presenter

import (
	"disaster-map/models/constants"
	"disaster-map/models/entities"
	"disaster-map/pkg/listpanel"
	"disaster-map/pkg/mapsurface"
	"fmt"

	"github.com/rs/zerolog/log"
)

// NewEventPresenter renders events with the icon chosen by iconOf for each
// event category.
func NewEventPresenter(target Target, iconOf func(category string) entities.Icon) *EventPresenter {
	return &EventPresenter{target: target, iconOf: iconOf}
}

func (p *EventPresenter) Loading() {
	p.target.Panel.SetStatus(constants.EventLoadingMessage)
}

// Present replaces the event layer and list with one marker and one entry
// per occurrence. Event entries only re-center the map.
func (p *EventPresenter) Present(records []entities.DisasterEventRecord) int {
	var markers []mapsurface.MarkerSpec
	var items []listpanel.EntrySpec
	for _, event := range records {
		title := escape(event.Title)
		category := escape(event.Category)
		icon := p.iconOf(event.Category)

		for _, occurrence := range event.Occurrences {
			when := p.target.formatTime(occurrence.Time)

			markers = append(markers, mapsurface.MarkerSpec{
				Position:  occurrence.Position(),
				Icon:      icon,
				PopupHTML: fmt.Sprintf("<b>%s</b><br>Kategori: %s<br>Tarih: %s", title, category, when),
			})
			items = append(items, listpanel.EntrySpec{
				ClassName: eventItemClass,
				HTML:      fmt.Sprintf("<b>%s</b><br><small>%s - %s</small>", title, category, when),
				Timestamp: occurrence.Time,
				Binding:   listpanel.Binding{Position: occurrence.Position(), Zoom: constants.FocusZoom},
			})
		}
	}

	p.target.replace(markers, func([]mapsurface.MarkerHandle) []listpanel.EntrySpec { return items })

	log.Info().
		Str(constants.LogFeed, constants.FeedEvents).
		Int(constants.LogRecordNumber, len(records)).
		Int(constants.LogMarkerNumber, len(markers)).
		Msg("Events presented")
	return len(markers)
}

func (p *EventPresenter) Fail(err error) {
	p.target.fail(constants.FeedEvents, constants.EventFailureMessage, err)
}
