package handler

import (
	"github.com/mlutsenko/chirp/internal/config"
	"github.com/mlutsenko/chirp/internal/handler/http"
	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
