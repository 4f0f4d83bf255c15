package presenter

import (
	"disaster-map/models/constants"
	"disaster-map/models/entities"
	"disaster-map/pkg/listpanel"
	"disaster-map/pkg/mapsurface"
	"fmt"

	"github.com/rs/zerolog/log"
)

func NewQuakePresenter(target Target) *QuakePresenter {
	return &QuakePresenter{target: target, icon: constants.QuakeIcon}
}

func (p *QuakePresenter) Loading() {
	p.target.Panel.SetStatus(constants.QuakeLoadingMessage)
}

// Present replaces the quake layer and list with records. Each list entry
// focuses the map on its quake and opens the matching popup.
func (p *QuakePresenter) Present(records []entities.QuakeRecord) int {
	markers := make([]mapsurface.MarkerSpec, 0, len(records))
	items := make([]listpanel.EntrySpec, 0, len(records))
	for _, quake := range records {
		place := escape(quake.Place)
		magnitude := formatNumber(quake.Magnitude)
		when := p.target.formatTime(quake.Time)

		markers = append(markers, mapsurface.MarkerSpec{
			Position: quake.Position(),
			Icon:     p.icon,
			PopupHTML: fmt.Sprintf("<b>%s</b><br>Büyüklük: %s Mw<br>Derinlik: %s km<br>%s",
				place, magnitude, formatNumber(quake.DepthKm), when),
		})
		items = append(items, listpanel.EntrySpec{
			ClassName: quakeItemClass,
			HTML:      fmt.Sprintf("<b>%s</b> <small>(%s Mw)</small><br><small>%s</small>", place, magnitude, when),
			Timestamp: quake.Time,
			Binding:   listpanel.Binding{Position: quake.Position(), Zoom: constants.FocusZoom},
		})
	}

	p.target.replace(markers, func(handles []mapsurface.MarkerHandle) []listpanel.EntrySpec {
		for i := range items {
			items[i].Binding.Marker = handles[i]
		}
		return items
	})

	log.Info().
		Str(constants.LogFeed, constants.FeedQuakes).
		Int(constants.LogMarkerNumber, len(records)).
		Msg("Quakes presented")
	return len(records)
}

func (p *QuakePresenter) Fail(err error) {
	p.target.fail(constants.FeedQuakes, constants.QuakeFailureMessage, err)
}
