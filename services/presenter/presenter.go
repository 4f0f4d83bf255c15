package presenter

import (
	"disaster-map/models/constants"
	"disaster-map/pkg/listpanel"
	"disaster-map/pkg/mapsurface"
	"disaster-map/services/feeds"
	"disaster-map/utils/dates"
	"html"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

func (target Target) formatTime(t time.Time) string {
	return dates.DateToString(t, constants.DisplayTimeFormat, target.Location)
}

// replace swaps the layer, then the list built from the new marker handles,
// as one step for Guard readers.
func (target Target) replace(markers []mapsurface.MarkerSpec, entriesFor func(handles []mapsurface.MarkerHandle) []listpanel.EntrySpec) {
	defer target.lock()()

	handles := target.Surface.ReplaceLayer(target.LayerID, markers)
	target.Panel.Replace(entriesFor(handles))
}

func (target Target) lock() (unlock func()) {
	if target.Guard == nil {
		return func() {}
	}
	target.Guard.Lock()
	return target.Guard.Unlock
}

func (target Target) fail(feed, message string, err error) {
	log.Error().
		Err(err).
		Str(constants.LogFeed, feed).
		Str("kind", feeds.Kind(err)).
		Str(constants.LogPanelID, target.Panel.ID()).
		Msg("Feed refresh failed, map layer left untouched")

	defer target.lock()()
	target.Panel.SetText(message)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	return html.EscapeString(s)
}
