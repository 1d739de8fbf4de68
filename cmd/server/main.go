package main

import (
	"context"

	"github.com/emarchenko/go-identity/internal/config"
	"github.com/emarchenko/go-identity/internal/handler"
	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/server"
	"github.com/emarchenko/go-identity/internal/service"
	"github.com/emarchenko/go-identity/internal/store"
)

func main() {
	log := logger.NewLogger("identity-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
