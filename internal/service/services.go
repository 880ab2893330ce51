package service

import (
	"fmt"

	"github.com/MKhiriev/mywebclass-content/internal/adapter"
	"github.com/MKhiriev/mywebclass-content/internal/config"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
)

type Services struct {
	ContentService ContentService
	AppInfoService AppInfoService
}

// NewServices wires the services from cfg.
//
// A CMS client that cannot be constructed does not fail startup: the error is
// logged and kept inside the content service, so every lookup degrades to
// the fallback response until the configuration is fixed.
func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var contentService ContentService
	contentAdapter, err := adapter.NewSanityAdapter(cfg.Sanity, cfg.App.Version, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("sanity client is not configured, serving fallback content")
		contentService = NewUnavailableContentService(err, logger)
	} else {
		contentService = NewContentService(contentAdapter, logger)
	}

	return &Services{
		ContentService: NewContentLoggingService().Wrap(contentService),
		AppInfoService: appInfoService,
	}, nil
}
