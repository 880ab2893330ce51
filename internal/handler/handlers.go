package handler

import (
	"github.com/MKhiriev/mywebclass-content/internal/handler/http"
	"github.com/MKhiriev/mywebclass-content/internal/handler/lambda"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/service"
)

// Handlers groups the transports that serve the about page. Both share the
// same services and therefore produce identical responses.
type Handlers struct {
	HTTP   *http.Handler
	Lambda *lambda.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.ContentService == nil {
		return nil, errNoContentService
	}

	return &Handlers{
		HTTP:   http.NewHandler(services, logger),
		Lambda: lambda.NewHandler(services, logger),
	}, nil
}
