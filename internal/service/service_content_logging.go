package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/models"
)

// ContentLoggingService records the outcome and latency of every content
// lookup at debug level using the request-scoped logger.
type ContentLoggingService struct {
	inner ContentService
}

func NewContentLoggingService() ContentServiceWrapper {
	return &ContentLoggingService{}
}

func (l *ContentLoggingService) GetAboutPage(ctx context.Context) (*models.ContentDocument, error) {
	start := time.Now()
	doc, err := l.inner.GetAboutPage(ctx)

	log := logger.FromContext(ctx)
	event := log.Debug().Dur("duration", time.Since(start))
	switch {
	case err == nil && doc != nil:
		event.Str("outcome", "found").Str("title", doc.Title).Msg("about page lookup")
	case err == nil, errors.Is(err, ErrContentNotFound):
		event.Str("outcome", "not_found").Msg("about page lookup")
	default:
		event.Str("outcome", "error").Err(err).Msg("about page lookup")
	}

	return doc, err
}

func (l *ContentLoggingService) Wrap(wrapped ContentService) ContentService {
	l.inner = wrapped
	return l
}
