package handler

import (
	"github.com/emarchenko/go-identity/internal/handler/http"
	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/service"
)

// Handlers aggregates the transport handlers of the application. The
// identity service exposes a single HTTP surface.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
