package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mywebclass-content/internal/adapter"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/models"
)

// AboutPageQuery selects the single page whose slug is "about".
const AboutPageQuery = `*[_type == "page" && slug.current == "about"][0]{title, content, slug}`

type contentService struct {
	contentAdapter adapter.ContentAdapter

	// adapterErr is set when the adapter could not be built; every call
	// then reports it instead of querying.
	adapterErr error

	logger *logger.Logger
}

// NewContentService returns a ContentService that queries contentAdapter.
func NewContentService(contentAdapter adapter.ContentAdapter, logger *logger.Logger) ContentService {
	return &contentService{
		contentAdapter: contentAdapter,
		logger:         logger,
	}
}

// NewUnavailableContentService returns a ContentService whose every call fails
// with [ErrContentUnavailable] wrapping cause. It keeps the process alive when
// the CMS client cannot be configured so callers can serve fallback content.
func NewUnavailableContentService(cause error, logger *logger.Logger) ContentService {
	return &contentService{
		adapterErr: cause,
		logger:     logger,
	}
}

func (s *contentService) GetAboutPage(ctx context.Context) (*models.ContentDocument, error) {
	if s.adapterErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentUnavailable, s.adapterErr)
	}

	raw, err := s.contentAdapter.Query(ctx, AboutPageQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("error querying about page: %w", err)
	}

	doc, err := models.NewContentDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("error reading about page: %w", err)
	}
	if doc == nil {
		return nil, ErrContentNotFound
	}

	return doc, nil
}
