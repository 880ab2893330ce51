package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/mywebclass-content/internal/config"
)

// Field names accepted by [SanityConfigValidator].
const (
	FieldProjectID  = "project_id"
	FieldDataset    = "dataset"
	FieldAPIVersion = "api_version"
	FieldAPIHost    = "api_host"
)

var (
	projectIDPattern  = regexp.MustCompile(`(?i)^[-a-z0-9]+$`)
	datasetPattern    = regexp.MustCompile(`^~?[a-z0-9][-\w]{0,63}$`)
	apiVersionPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// SanityConfigValidator validates [config.Sanity] values. Values are checked
// as given; callers apply defaults first.
type SanityConfigValidator struct {
}

func NewSanityConfigValidator() Validator {
	return &SanityConfigValidator{}
}

func (v *SanityConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case config.Sanity:
		return v.validateSanity(value, fields...)
	case *config.Sanity:
		return v.validateSanity(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SanityConfigValidator) validateSanity(cfg config.Sanity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldDataset, FieldAPIVersion, FieldAPIHost}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if cfg.ProjectID == "" {
				return ErrMissingProjectID
			}
			if !projectIDPattern.MatchString(cfg.ProjectID) {
				return fmt.Errorf("%w: %q", ErrInvalidProjectID, cfg.ProjectID)
			}
		case FieldDataset:
			if !datasetPattern.MatchString(cfg.Dataset) {
				return fmt.Errorf("%w: %q", ErrInvalidDataset, cfg.Dataset)
			}
		case FieldAPIVersion:
			if !isValidAPIVersion(cfg.APIVersion) {
				return fmt.Errorf("%w: %q", ErrInvalidAPIVersion, cfg.APIVersion)
			}
		case FieldAPIHost:
			u, err := url.Parse(strings.TrimSpace(cfg.APIHost))
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("%w: %q", ErrInvalidAPIHost, cfg.APIHost)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidAPIVersion accepts "1", "X" or a real calendar date, each with an
// optional "v" prefix.
func isValidAPIVersion(raw string) bool {
	version := strings.TrimPrefix(raw, "v")
	if version == "1" || version == "X" {
		return true
	}

	if !apiVersionPattern.MatchString(version) {
		return false
	}
	_, err := time.Parse(time.DateOnly, version)
	return err == nil
}
