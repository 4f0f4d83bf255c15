package insights

import (
	"disaster-map/models/constants"
	"disaster-map/pkg/observer"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// NewProbes serves liveness and readiness on port. Readiness turns green
// once every feed in expected has reported at least one outcome.
func NewProbes(port int, expected ...string) *Impl {
	probes := &Impl{
		port:     port,
		expected: expected,
		reported: make(map[string]struct{}, len(expected)),
		app:      fiber.New(fiber.Config{DisableStartupMessage: true}),
	}

	probes.app.Get(livenessPath, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	probes.app.Get(readinessPath, func(c *fiber.Ctx) error {
		if !probes.IsReady() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	return probes
}

func (probes *Impl) OnNotify(e observer.Event) {
	if e.E != observer.FeedPresentedEvent && e.E != observer.FeedFailedEvent {
		return
	}

	probes.mu.Lock()
	defer probes.mu.Unlock()
	probes.reported[e.Feed] = struct{}{}
}

func (probes *Impl) IsReady() bool {
	probes.mu.RLock()
	defer probes.mu.RUnlock()

	for _, feed := range probes.expected {
		if _, ok := probes.reported[feed]; !ok {
			return false
		}
	}
	return true
}

func (probes *Impl) ListenAndServe() error {
	log.Info().Int(constants.LogHTTPPort, probes.port).Msg("Probes listening")
	return probes.app.Listen(fmt.Sprintf(":%d", probes.port))
}

func (probes *Impl) Shutdown() error {
	return probes.app.Shutdown()
}
