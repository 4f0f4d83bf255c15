package main

import (
	"context"
	"disaster-map/application"
	"disaster-map/models/constants"
	"disaster-map/utils/settings"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

func main() {
	errConfig := settings.Load(constants.ConfigFileName)
	settings.InitLog(os.Stderr)
	if errConfig != nil {
		log.Fatal().Err(errConfig).Msg("Refusing to start with this configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := application.New()
	if err != nil {
		log.Fatal().Err(err).Msgf("Shutting down after failing to instantiate application")
	}

	app.Run()
	log.Info().Msgf("%s v%s is now running. Press CTRL-C to exit.", constants.ExternalName, constants.Version)
	<-ctx.Done()
	stop()

	log.Info().Msgf("Gracefully shutting down %s...", constants.ExternalName)
	app.Shutdown()
}
