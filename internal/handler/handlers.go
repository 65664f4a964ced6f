package handler

import (
	"github.com/MKhiriev/go-user-hub/internal/config"
	"github.com/MKhiriev/go-user-hub/internal/handler/http"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}
}
