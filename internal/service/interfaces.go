package service

import (
	"context"

	"github.com/MKhiriev/mywebclass-content/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ContentServiceWrapper

// ContentService reads pages from the CMS.
type ContentService interface {
	// GetAboutPage returns the "about" page projected to {title, content, slug}.
	// It returns [ErrContentNotFound] when the CMS has no such page.
	GetAboutPage(ctx context.Context) (*models.ContentDocument, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContentServiceWrapper defines middleware composition for ContentService.
// Implementations wrap an existing ContentService to add behavior such as
// logging.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService // returns a decorated ContentService applying additional behavior
}
