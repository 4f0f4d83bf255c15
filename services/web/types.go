package web

import (
	"disaster-map/pkg/listpanel"
	"disaster-map/pkg/mapsurface"
	"disaster-map/services/refresh"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Config of the map page. AssetsDir, when set, serves /assets from disk
// instead of the icons embedded with the page. Guard is the lock the
// presenters hold while swapping a layer and its list.
type Config struct {
	Port      int
	AssetsDir string
	Surface   mapsurface.Surface
	Panels    []listpanel.Panel
	Refresher refresh.Service
	Guard     *sync.RWMutex
	Now       func() time.Time
}

type EntryView struct {
	ID        int               `json:"id"`
	Index     int               `json:"index"`
	ClassName string            `json:"className"`
	HTML      string            `json:"html"`
	Age       string            `json:"age"`
	Binding   listpanel.Binding `json:"binding"`
}

type PanelView struct {
	ID      string      `json:"id"`
	Text    string      `json:"text,omitempty"`
	Entries []EntryView `json:"entries"`
}

type StateView struct {
	Map    mapsurface.Snapshot `json:"map"`
	Panels []PanelView         `json:"panels"`
}

type Service interface {
	ListenAndServe() error
	Shutdown() error
}

type Impl struct {
	app       *fiber.App
	port      int
	surface   mapsurface.Surface
	panels    map[string]listpanel.Panel
	order     []string
	refresher refresh.Service
	guard     *sync.RWMutex
	now       func() time.Time
}
