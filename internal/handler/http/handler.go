package http

import (
	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/service"
	"github.com/emarchenko/go-identity/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
