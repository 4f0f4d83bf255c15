package eonet

import (
	"context"
	"disaster-map/models/constants"
	"disaster-map/models/entities"
	"disaster-map/services/feeds"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var iconRules = []iconRule{
	{keyword: "fire", icon: constants.FireIcon},
	{keyword: "volcano", icon: constants.VolcanoIcon},
	{keyword: "storm", icon: constants.StormIcon},
	{keyword: "flood", icon: constants.FloodIcon},
	{keyword: "ice", icon: constants.IceIcon},
	{keyword: "drought", icon: constants.DroughtIcon},
	{keyword: "dust", icon: constants.DustIcon},
	{keyword: "landslide", icon: constants.LandslideIcon},
	{keyword: "snow", icon: constants.SnowIcon},
	{keyword: "temperature", icon: constants.HeatIcon},
	{keyword: "water", icon: constants.WaterIcon},
}

func New(baseURL string, client feeds.Doer) *Impl {
	return &Impl{
		endpoint: fmt.Sprintf("%s%s?%s", strings.TrimSuffix(baseURL, "/"), eventsPath, queryString),
		client:   client,
	}
}

func (service *Impl) Endpoint() string {
	return service.endpoint
}

// IconForCategory matches the category label against the icon table,
// case-insensitively. Unknown categories get the fire icon.
func IconForCategory(category string) entities.Icon {
	search := strings.ToLower(category)
	rule, found := lo.Find(iconRules, func(r iconRule) bool {
		return strings.Contains(search, r.keyword)
	})
	if !found {
		return constants.FireIcon
	}
	return rule.icon
}

// FetchEvents returns the open events in upstream order, one occurrence per
// point geometry.
func (service *Impl) FetchEvents(ctx context.Context) ([]entities.DisasterEventRecord, error) {
	var response EventsResponse
	if err := feeds.GetJSON(ctx, service.client, service.endpoint, &response); err != nil {
		return nil, err
	}

	if response.Events == nil {
		return nil, feeds.Parsef("response has no events")
	}

	records := make([]entities.DisasterEventRecord, 0, len(*response.Events))
	for _, event := range *response.Events {
		record := entities.DisasterEventRecord{
			Title:    event.Title,
			Category: lo.FirstOr(event.Categories, Category{}).Title,
		}
		for _, geometry := range event.Geometry {
			occurrence, ok, err := toOccurrence(geometry)
			if err != nil {
				return nil, fmt.Errorf("event %q: %w", event.Title, err)
			}
			if !ok {
				log.Debug().
					Str(constants.LogEventTitle, event.Title).
					Str(constants.LogGeometryType, geometry.Type).
					Msg("Geometry is not a point, occurrence ignored")
				continue
			}
			record.Occurrences = append(record.Occurrences, occurrence)
		}
		records = append(records, record)
	}

	log.Debug().
		Str(constants.LogFeed, constants.FeedEvents).
		Int(constants.LogRecordNumber, len(records)).
		Msg("Events parsed")
	return records, nil
}

func toOccurrence(geometry Geometry) (entities.Occurrence, bool, error) {
	if geometry.Type != "" && geometry.Type != geometryPoint {
		return entities.Occurrence{}, false, nil
	}

	var coords []float64
	if err := json.Unmarshal(geometry.Coordinates, &coords); err != nil {
		return entities.Occurrence{}, false, feeds.Parsef("invalid point coordinates: %v", err)
	}
	if len(coords) < 2 {
		return entities.Occurrence{}, false, feeds.Parsef("point has %d coordinates, expected 2", len(coords))
	}

	date, err := time.Parse(time.RFC3339, geometry.Date)
	if err != nil {
		return entities.Occurrence{}, false, feeds.Parsef("invalid date %q: %v", geometry.Date, err)
	}

	return entities.Occurrence{Longitude: coords[0], Latitude: coords[1], Time: date}, true, nil
}
