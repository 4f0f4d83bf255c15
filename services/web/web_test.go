package web_test

import (
	"context"
	"disaster-map/models/constants"
	"disaster-map/models/entities"
	"disaster-map/pkg/listpanel"
	"disaster-map/pkg/mapsurface"
	"disaster-map/pkg/observer"
	"disaster-map/services/presenter"
	"disaster-map/services/refresh"
	"disaster-map/services/web"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	cycles int
}

func (f *fakeRefresher) RunCycle(ctx context.Context) []refresh.Outcome {
	f.cycles++
	return []refresh.Outcome{{Feed: constants.FeedQuakes, Markers: 1}, {Feed: constants.FeedEvents, Error: "network error"}}
}

func (f *fakeRefresher) RegisterObserver(o observer.Observer) {}

type fixture struct {
	surface   *mapsurface.Impl
	quakes    *presenter.QuakePresenter
	refresher *fakeRefresher
	service   *web.Impl
}

var (
	izmir = entities.QuakeRecord{
		Latitude: 38.5, Longitude: 27.0, DepthKm: 10.2, Magnitude: 4.3,
		Place: "Izmir", Time: time.UnixMilli(1700000000000),
	}
	bolu = entities.QuakeRecord{
		Latitude: 40.7, Longitude: 31.6, DepthKm: 7, Magnitude: 3.1,
		Place: "Bolu", Time: time.UnixMilli(1700000500000),
	}
)

func newFixture(t *testing.T) fixture {
	t.Helper()
	surface := mapsurface.New(constants.InitialCenter, constants.InitialZoom,
		mapsurface.TileLayer{URL: constants.TileURL, Attribution: constants.TileAttribution},
		constants.QuakeLayerID, constants.EventLayerID)
	quakePanel := listpanel.New(constants.QuakePanelID, surface)
	eventPanel := listpanel.New(constants.EventPanelID, surface)

	guard := &sync.RWMutex{}
	quakes := presenter.NewQuakePresenter(presenter.Target{
		Surface: surface, LayerID: constants.QuakeLayerID, Panel: quakePanel, Location: time.UTC, Guard: guard,
	})
	quakes.Present([]entities.QuakeRecord{izmir})
	eventPanel.SetText(constants.EventFailureMessage)

	refresher := &fakeRefresher{}
	service := web.New(web.Config{
		Surface:   surface,
		Panels:    []listpanel.Panel{quakePanel, eventPanel},
		Refresher: refresher,
		Guard:     guard,
		Now:       func() time.Time { return time.UnixMilli(1700000000000).Add(3 * time.Hour) },
	})
	return fixture{surface: surface, quakes: quakes, refresher: refresher, service: service}
}

func clickPath(panelID string, entryID int) string {
	return "/api/panels/" + panelID + "/entries/" + strconv.Itoa(entryID) + "/click"
}

func quakeEntryID(t *testing.T, service *web.Impl) int {
	t.Helper()
	entries := service.State().Panels[0].Entries
	require.Len(t, entries, 1)
	return entries[0].ID
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestGetState(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.App().Test(httptest.NewRequest(http.MethodGet, "/api/state", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var state web.StateView
	decode(t, resp, &state)

	assert.Equal(t, 6, state.Map.View.Zoom)
	assert.Equal(t, constants.TileURL, state.Map.Tiles.URL)
	require.Len(t, state.Map.Layers, 2)
	require.Len(t, state.Map.Layers[0].Markers, 1)
	assert.Equal(t, entities.Position{Lat: 38.5, Lng: 27.0}, state.Map.Layers[0].Markers[0].Position)

	require.Len(t, state.Panels, 2)
	assert.Equal(t, constants.QuakePanelID, state.Panels[0].ID)
	require.Len(t, state.Panels[0].Entries, 1)
	assert.Contains(t, state.Panels[0].Entries[0].HTML, "Izmir")
	assert.Equal(t, "3 hours ago", state.Panels[0].Entries[0].Age)
	assert.Equal(t, constants.EventFailureMessage, state.Panels[1].Text)
}

func TestClickEntry(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.App().Test(httptest.NewRequest(http.MethodPost, clickPath(constants.QuakePanelID, quakeEntryID(t, f.service)), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		View      mapsurface.View `json:"view"`
		OpenPopup int             `json:"openPopup"`
	}
	decode(t, resp, &body)

	assert.Equal(t, mapsurface.View{Center: entities.Position{Lat: 38.5, Lng: 27.0}, Zoom: 7}, body.View)
	assert.Equal(t, f.surface.Markers(constants.QuakeLayerID)[0].ID, body.OpenPopup)
	assert.Equal(t, body.View, f.surface.View())
}

func TestClickEntryAfterRefresh(t *testing.T) {
	f := newFixture(t)
	stale := quakeEntryID(t, f.service)

	f.quakes.Present([]entities.QuakeRecord{bolu})
	before := f.surface.View()

	resp, err := f.service.App().Test(httptest.NewRequest(http.MethodPost, clickPath(constants.QuakePanelID, stale), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, before, f.surface.View(), "a click on a replaced entry must not move the map")
	assert.Zero(t, f.surface.Snapshot().OpenPopup)

	current := quakeEntryID(t, f.service)
	assert.NotEqual(t, stale, current)

	resp, err = f.service.App().Test(httptest.NewRequest(http.MethodPost, clickPath(constants.QuakePanelID, current), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, mapsurface.View{Center: entities.Position{Lat: 40.7, Lng: 31.6}, Zoom: 7}, f.surface.View())
}

func TestStateNeverMixesRefreshes(t *testing.T) {
	f := newFixture(t)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		batches := [][]entities.QuakeRecord{{izmir}, {izmir, bolu}, {}}
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
				f.quakes.Present(batches[i%len(batches)])
			}
		}
	}()

	for i := 0; i < 500; i++ {
		state := f.service.State()
		markers := state.Map.Layers[0].Markers
		entries := state.Panels[0].Entries
		require.Len(t, entries, len(markers))
		for j := range entries {
			assert.Equal(t, markers[j].ID, entries[j].Binding.Marker.ID)
		}
	}
	close(done)
	wg.Wait()
}

func TestIconsAreServed(t *testing.T) {
	f := newFixture(t)

	icons := []entities.Icon{
		constants.QuakeIcon, constants.FireIcon, constants.VolcanoIcon, constants.StormIcon,
		constants.FloodIcon, constants.IceIcon, constants.DroughtIcon, constants.DustIcon,
		constants.LandslideIcon, constants.SnowIcon, constants.HeatIcon, constants.WaterIcon,
	}
	for _, icon := range icons {
		t.Run(icon.Name, func(t *testing.T) {
			resp, err := f.service.App().Test(httptest.NewRequest(http.MethodGet, "/"+icon.URL, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "<svg")
		})
	}
}

func TestClickEntryErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "unknown panel", path: "/api/panels/nope/entries/1/click", expected: http.StatusNotFound},
		{name: "unknown entry", path: "/api/panels/quake-list/entries/5/click", expected: http.StatusNotFound},
		{name: "failed panel has no entries", path: "/api/panels/event-list/entries/1/click", expected: http.StatusNotFound},
		{name: "invalid id", path: "/api/panels/quake-list/entries/abc/click", expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.service.App().Test(httptest.NewRequest(http.MethodPost, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}

func TestRefreshNow(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.App().Test(httptest.NewRequest(http.MethodPost, "/api/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Outcomes []refresh.Outcome `json:"outcomes"`
	}
	decode(t, resp, &body)

	assert.Equal(t, 1, f.refresher.cycles)
	require.Len(t, body.Outcomes, 2)
	assert.Equal(t, "network error", body.Outcomes[1].Error)
}

func TestIndexPage(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.App().Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `id="quake-list"`)
	assert.Contains(t, string(body), `id="event-list"`)
	assert.Contains(t, string(body), "/entries/${item.dataset.id}/click", "clicks address entries by id")
}
