package handler

import (
	"github.com/MKhiriev/go-notes-server/internal/handler/http"
	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
