package adapter

import (
	"errors"

	"github.com/MKhiriev/mywebclass-content/internal/validators"
)

// Construction errors returned by [NewSanityAdapter].
var (
	ErrMissingProjectID  = validators.ErrMissingProjectID
	ErrInvalidProjectID  = validators.ErrInvalidProjectID
	ErrInvalidDataset    = validators.ErrInvalidDataset
	ErrInvalidAPIVersion = validators.ErrInvalidAPIVersion
	ErrInvalidAPIHost    = validators.ErrInvalidAPIHost
)

// Errors mapped from Sanity API responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInvalidResponse     = errors.New("invalid response body")
)
