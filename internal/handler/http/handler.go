package http

import (
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/service"
	"github.com/MKhiriev/mywebclass-content/internal/utils"
)

type Handler struct {
	services    *service.Services
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
