package web

import (
	"disaster-map/models/constants"
	"disaster-map/pkg/listpanel"
	"disaster-map/utils/dates"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

//go:embed dist/*
var dist embed.FS

func New(config Config) *Impl {
	now := config.Now
	if now == nil {
		now = time.Now
	}
	if config.Guard == nil {
		config.Guard = &sync.RWMutex{}
	}

	service := &Impl{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		port:      config.Port,
		surface:   config.Surface,
		panels:    lo.KeyBy(config.Panels, func(p listpanel.Panel) string { return p.ID() }),
		order:     lo.Map(config.Panels, func(p listpanel.Panel, _ int) string { return p.ID() }),
		refresher: config.Refresher,
		guard:     config.Guard,
		now:       now,
	}

	service.app.Use(recover.New())

	api := service.app.Group("/api")
	api.Get("/state", service.getState)
	api.Post("/panels/:panel/entries/:id/click", service.clickEntry)
	api.Post("/refresh", service.refreshNow)

	if config.AssetsDir != "" {
		service.app.Static("/assets", config.AssetsDir)
	}

	service.app.Use("/", filesystem.New(filesystem.Config{
		Root:       http.FS(dist),
		PathPrefix: "/dist",
		Index:      "index.html",
	}))

	return service
}

func (service *Impl) App() *fiber.App {
	return service.app
}

func (service *Impl) ListenAndServe() error {
	log.Info().Int(constants.LogHTTPPort, service.port).Msg("Map page listening")
	return service.app.Listen(fmt.Sprintf(":%d", service.port))
}

func (service *Impl) Shutdown() error {
	return service.app.Shutdown()
}

// State reads the map and every panel under the presenters' guard, so a
// layer and its list always come from the same refresh.
func (service *Impl) State() StateView {
	service.guard.RLock()
	defer service.guard.RUnlock()

	now := service.now()
	panels := make([]PanelView, 0, len(service.order))
	for _, id := range service.order {
		snapshot := service.panels[id].Snapshot()
		panels = append(panels, PanelView{
			ID:   snapshot.ID,
			Text: snapshot.Text,
			Entries: lo.Map(snapshot.Entries, func(e listpanel.Entry, _ int) EntryView {
				return EntryView{
					ID:        e.ID,
					Index:     e.Index,
					ClassName: e.ClassName,
					HTML:      e.HTML,
					Age:       dates.Age(e.Timestamp, now),
					Binding:   e.Binding,
				}
			}),
		})
	}

	return StateView{Map: service.surface.Snapshot(), Panels: panels}
}

func (service *Impl) getState(c *fiber.Ctx) error {
	return c.JSON(service.State())
}

func (service *Impl) clickEntry(c *fiber.Ctx) error {
	panel, ok := service.panels[c.Params("panel")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown panel"})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid entry id"})
	}

	view, err := panel.Click(id)
	if errors.Is(err, listpanel.ErrEntryNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"view": view, "openPopup": service.surface.Snapshot().OpenPopup})
}

func (service *Impl) refreshNow(c *fiber.Ctx) error {
	if service.refresher == nil {
		return c.SendStatus(fiber.StatusNotImplemented)
	}
	outcomes := service.refresher.RunCycle(c.UserContext())
	return c.JSON(fiber.Map{"outcomes": outcomes})
}
