package usgs

import (
	"context"
	"disaster-map/models/constants"
	"disaster-map/models/entities"
	"disaster-map/services/feeds"
	"disaster-map/utils/dates"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

func New(baseURL string, client feeds.Doer) *Impl {
	return &Impl{
		endpoint: fmt.Sprintf("%s%s?%s", strings.TrimSuffix(baseURL, "/"), queryPath, queryString),
		client:   client,
	}
}

func (service *Impl) Endpoint() string {
	return service.endpoint
}

// FetchQuakes returns the latest quakes in upstream order.
func (service *Impl) FetchQuakes(ctx context.Context) ([]entities.QuakeRecord, error) {
	var collection FeatureCollection
	if err := feeds.GetJSON(ctx, service.client, service.endpoint, &collection); err != nil {
		return nil, err
	}

	if collection.Features == nil {
		return nil, feeds.Parsef("feature collection has no features")
	}

	records := make([]entities.QuakeRecord, 0, len(*collection.Features))
	for i, feature := range *collection.Features {
		coords := feature.Geometry.Coordinates
		if len(coords) < 3 {
			return nil, feeds.Parsef("feature %d has %d coordinates, expected 3", i, len(coords))
		}
		records = append(records, entities.QuakeRecord{
			Longitude: coords[0],
			Latitude:  coords[1],
			DepthKm:   coords[2],
			Magnitude: feature.Properties.Mag,
			Place:     feature.Properties.Place,
			Time:      dates.FromEpochMillis(feature.Properties.Time),
		})
	}

	log.Debug().
		Str(constants.LogFeed, constants.FeedQuakes).
		Int(constants.LogRecordNumber, len(records)).
		Msg("Quakes parsed")
	return records, nil
}
