package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chup1x/carprice/internal/config"
	"github.com/chup1x/carprice/internal/logger"
	"github.com/chup1x/carprice/internal/transport/v1/rest"
)

func MustRunApp() {
	config, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("to get config")
	}
	logger.Setup(config.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := rest.New()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown web server")
		}
	}()

	log.Info().
		Str("port", config.Server.Port).
		Str("predict_url", config.PredictService.URL()).
		Msg("starting web server")
	if err := server.Start(ctx, config); err != nil {
		log.Fatal().Err(err).Msg("start web server")
	}
}
